package models

// Tag 名称统一小写存储
type Tag struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_tags_name" json:"name"`
	Slug string `gorm:"column:slug;type:varchar(60);not null;uniqueIndex:uk_tags_slug" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}
