package dao

import (
	"Cookhub/models"

	"gorm.io/gorm"
)

// AutoMigrate 按模型建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
