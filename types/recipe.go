package types

import (
	"encoding/json"
	"strings"
	"time"
)

// TagList 兼容 ["a","b"] 与 "a, b" 两种写法
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = SplitTags(raw)
	return nil
}

// SplitTags 逗号分隔
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

type RecipeStepInput struct {
	StepNumber  int    `json:"step_number" binding:"min=0"`
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"max=255"`
	Duration    int    `json:"duration" binding:"min=0"`
}

// RecipeRequest 创建与更新共用
type RecipeRequest struct {
	Title         string            `json:"title" binding:"required,max=200"`
	Slug          string            `json:"slug" binding:"omitempty,max=220"`
	Description   string            `json:"description"`
	Ingredients   string            `json:"ingredients"`
	Instructions  string            `json:"instructions"`
	CookingTime   int               `json:"cooking_time" binding:"min=0"`
	Difficulty    string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Image         string            `json:"image" binding:"max=255"`
	Servings      int               `json:"servings" binding:"min=0"`
	Calories      int               `json:"calories" binding:"min=0"`
	Proteins      float64           `json:"proteins" binding:"min=0"`
	Fats          float64           `json:"fats" binding:"min=0"`
	Carbohydrates float64           `json:"carbohydrates" binding:"min=0"`
	IsPublished   *bool             `json:"is_published"`
	CategoryID    *uint64           `json:"category_id"`
	Tags          TagList           `json:"tags"`
	Steps         []RecipeStepInput `json:"steps" binding:"dive"`
}

// RecipeCard 列表卡片
type RecipeCard struct {
	ID          uint64        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	CookingTime int           `json:"cooking_time"`
	Difficulty  string        `json:"difficulty"`
	Author      *UserBrief    `json:"author,omitempty"`
	Category    *CategoryItem `json:"category,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type RecipeStepItem struct {
	StepNumber  int    `json:"step_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Duration    int    `json:"duration"`
}

type RecipeItem struct {
	RecipeCard
	Ingredients   []string         `json:"ingredients"`
	Instructions  string           `json:"instructions"`
	Servings      int              `json:"servings"`
	Calories      int              `json:"calories"`
	Proteins      float64          `json:"proteins"`
	Fats          float64          `json:"fats"`
	Carbohydrates float64          `json:"carbohydrates"`
	IsPublished   bool             `json:"is_published"`
	PublishedAt   *time.Time       `json:"published_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Tags          []TagItem        `json:"tags"`
	Steps         []RecipeStepItem `json:"steps"`
}

// RecipeDetailResponse 详情页聚合
type RecipeDetailResponse struct {
	Recipe         *RecipeItem    `json:"recipe"`
	LikesCount     int64          `json:"likes_count"`
	FavoritesCount int64          `json:"favorites_count"`
	AverageRating  float64        `json:"average_rating"`
	RatingCount    int64          `json:"rating_count"`
	IsLiked        bool           `json:"is_liked"`
	IsFavorited    bool           `json:"is_favorited"`
	UserRating     int            `json:"user_rating"` // 0 表示未评分
	IsAuthor       bool           `json:"is_author"`
	Comments       []*CommentItem `json:"comments"`
	Recommended    []*RecipeCard  `json:"recommended"`
}

type SearchQuery struct {
	PageQuery
	Q string `form:"q"`
}
