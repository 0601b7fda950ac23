package models

type Category struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:uk_categories_slug" json:"slug"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
