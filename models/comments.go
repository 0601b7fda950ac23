package models

import "time"

// Comment parent_id 为空表示一级评论，回复只挂在一级评论下
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;index:idx_comments_recipe_parent,priority:1" json:"recipe_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user" json:"user_id"`
	ParentID  *uint64   `gorm:"column:parent_id;index:idx_comments_recipe_parent,priority:2" json:"parent_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User   *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Recipe *Recipe  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
