package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_users_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uk_users_email" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(128);not null" json:"-"` // bcrypt
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Profile 用户资料，与 User 一对一
type Profile struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_profiles_user" json:"user_id"`
	Bio       string    `gorm:"column:bio;type:varchar(500);not null;default:''" json:"bio"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
