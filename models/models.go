package models

// All AutoMigrate 需要的全部表，顺序按外键依赖排列
func All() []any {
	return []any{
		&User{},
		&Profile{},
		&Category{},
		&Tag{},
		&Recipe{},
		&RecipeStep{},
		&Like{},
		&Favorite{},
		&Rating{},
		&Comment{},
		&Cookbook{},
		&ShoppingList{},
		&ShoppingItem{},
		&UserFollow{},
		&Notification{},
		&NoticeOutbox{},
	}
}
