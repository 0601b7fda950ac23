package models

import "time"

const DefaultShoppingListName = "My shopping list"

// ShoppingList 每个用户一个默认清单，访问时按需创建
type ShoppingList struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_shopping_lists_user" json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User  *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Items []ShoppingItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (ShoppingList) TableName() string {
	return "shopping_lists"
}

type ShoppingItem struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShoppingListID uint64    `gorm:"column:shopping_list_id;not null;index:idx_shopping_items_list" json:"shopping_list_id"`
	Name           string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Quantity       string    `gorm:"column:quantity;type:varchar(50);not null;default:''" json:"quantity"`
	IsChecked      bool      `gorm:"column:is_checked;not null;default:false" json:"is_checked"`
	RecipeID       *uint64   `gorm:"column:recipe_id;index:idx_shopping_items_recipe" json:"recipe_id"` // 来源食谱，可空
	LineKey        string    `gorm:"column:line_key;type:varchar(32);not null;default:''" json:"line_key,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ShoppingItem) TableName() string {
	return "shopping_items"
}
