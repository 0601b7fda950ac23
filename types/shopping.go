package types

import "time"

type ShoppingOption struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Text  string `json:"text"`
}

type ShoppingOptionsResponse struct {
	Recipe  *RecipeCard      `json:"recipe"`
	Options []ShoppingOption `json:"options"`
}

type AddToShoppingListRequest struct {
	Keys []string `json:"keys" form:"keys"`
}

type AddToShoppingListResponse struct {
	Added   int      `json:"added"`
	Skipped []string `json:"skipped"` // 当前配料中已不存在的 key
	Message string   `json:"message"`
}

type ShoppingItemRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Quantity string `json:"quantity" binding:"max=50"`
}

type ShoppingItemView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	IsChecked bool      `json:"is_checked"`
	RecipeID  *uint64   `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ShoppingListResponse struct {
	ID      uint64              `json:"id"`
	Name    string              `json:"name"`
	Items   []*ShoppingItemView `json:"items"`
	Total   int                 `json:"total"`
	Checked int                 `json:"checked"`
}
