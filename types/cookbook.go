package types

import "time"

type CookbookRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	CoverImage  string `json:"cover_image" binding:"max=255"`
}

type CookbookItem struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	IsPublic     bool       `json:"is_public"`
	CoverImage   string     `json:"cover_image"`
	Owner        *UserBrief `json:"owner,omitempty"`
	RecipesCount int64      `json:"recipes_count"`
	ShareCode    string     `json:"share_code,omitempty"` // 仅公开食谱书
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CookbookDetail struct {
	CookbookItem
	IsOwner bool          `json:"is_owner"`
	Recipes []*RecipeCard `json:"recipes"`
}

type CookbookListResponse struct {
	Mine   []*CookbookItem `json:"mine"`
	Public []*CookbookItem `json:"public"`
}
