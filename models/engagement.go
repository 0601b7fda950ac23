package models

import "time"

// Like 唯一键: user_id + recipe_id，重复操作即取消
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_likes_user_recipe,priority:2;index:idx_likes_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// Favorite 收藏，唯一键: user_id + recipe_id
type Favorite struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_favorites_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_favorites_user_recipe,priority:2;index:idx_favorites_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_favorites_created" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}

func (Favorite) TableName() string { return "favorites" }

const (
	MinScore = 1
	MaxScore = 5
)

// Rating 评分，同一用户重复评分覆盖原值
type Rating struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_ratings_user_recipe,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_ratings_user_recipe,priority:2;index:idx_ratings_recipe" json:"recipe_id"`
	Score     int       `gorm:"column:score;not null;check:chk_ratings_score,score >= 1 AND score <= 5" json:"score"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }
