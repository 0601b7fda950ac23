package database

import (
	"Cookhub/config"
	"Cookhub/pkg/log"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	gormConf := &gorm.Config{}
	if !conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.L.Info("connect database success", zap.String("database", conf.MySQL.Database))
	return db
}
