package dao

import (
	"Cookhub/models"
	"context"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

func (d *Category) List(ctx context.Context) ([]*models.Category, error) {
	var list []*models.Category
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (d *Category) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}
