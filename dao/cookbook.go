package dao

import (
	"Cookhub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Cookbook struct {
	Repo[models.Cookbook]
}

func NewCookbook(db *gorm.DB) *Cookbook {
	return &Cookbook{
		Repo: NewRepo[models.Cookbook](db),
	}
}

// GetDetail 带出作者和收录的食谱，草稿也会列出
func (d *Cookbook) GetDetail(ctx context.Context, id uint64) (*models.Cookbook, error) {
	var cookbook models.Cookbook
	err := d.Db.WithContext(ctx).
		Preload("User").
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipes.created_at DESC")
		}).
		Preload("Recipes.Author").
		First(&cookbook, id).Error
	if err != nil {
		return nil, err
	}
	return &cookbook, nil
}

func (d *Cookbook) ListByOwner(ctx context.Context, userID uint64) ([]*models.Cookbook, error) {
	var list []*models.Cookbook
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&list).Error
	return list, err
}

// ListPublicOthers 其他用户公开的食谱书
func (d *Cookbook) ListPublicOthers(ctx context.Context, userID uint64, limit int) ([]*models.Cookbook, error) {
	var list []*models.Cookbook
	err := d.Db.WithContext(ctx).
		Preload("User").
		Where("is_public = ? AND user_id <> ?", true, userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (d *Cookbook) RecipeCount(ctx context.Context, cookbookID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Table("cookbook_recipes").Where("cookbook_id = ?", cookbookID).Count(&count).Error
	return count, err
}

// AddRecipe 重复添加不报错
func (d *Cookbook) AddRecipe(ctx context.Context, cookbookID, recipeID uint64) error {
	return d.Db.WithContext(ctx).
		Table("cookbook_recipes").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]any{"cookbook_id": cookbookID, "recipe_id": recipeID}).Error
}

func (d *Cookbook) RemoveRecipe(ctx context.Context, cookbookID, recipeID uint64) error {
	return d.Db.WithContext(ctx).
		Exec("DELETE FROM cookbook_recipes WHERE cookbook_id = ? AND recipe_id = ?", cookbookID, recipeID).Error
}

func (d *Cookbook) Delete(ctx context.Context, id uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM cookbook_recipes WHERE cookbook_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cookbook{}, id).Error
	})
}
