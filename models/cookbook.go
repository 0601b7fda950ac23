package models

import "time"

type Cookbook struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_cookbooks_user" json:"user_id"`
	Name        string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsPublic    bool      `gorm:"column:is_public;not null;default:false;index:idx_cookbooks_public" json:"is_public"`
	CoverImage  string    `gorm:"column:cover_image;type:varchar(255);not null;default:''" json:"cover_image"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Recipes []Recipe `gorm:"many2many:cookbook_recipes;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
}

func (Cookbook) TableName() string {
	return "cookbooks"
}
