package dao

import (
	"Cookhub/models"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Recipe struct {
	Repo[models.Recipe]
}

func NewRecipe(db *gorm.DB) *Recipe {
	return &Recipe{
		Repo: NewRepo[models.Recipe](db),
	}
}

// RatingStats 评分聚合，每次读取实时计算
type RatingStats struct {
	Average float64 `gorm:"column:average"`
	Count   int64   `gorm:"column:count"`
}

// FindBySlug 只取食谱本身
func (d *Recipe) FindBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

// GetDetail 详情页，带出作者、分类、标签和步骤
func (d *Recipe) GetDetail(ctx context.Context, slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Where("slug = ?", slug).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SlugExists excludeID 非 0 时排除该食谱
func (d *Recipe) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	return d.IsExist(ctx, "slug = ? AND id <> ?", slug, excludeID)
}

// UniqueSlug 在 base 后追加 -2、-3 直到不冲突
func (d *Recipe) UniqueSlug(ctx context.Context, base string, excludeID uint64) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		exist, err := d.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exist {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (d *Recipe) published(ctx context.Context) *gorm.DB {
	return d.Db.WithContext(ctx).Model(&models.Recipe{}).Where("recipes.is_published = ?", true)
}

func (d *Recipe) paginate(query *gorm.DB, page, size int) ([]*models.Recipe, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []*models.Recipe
	err := query.
		Preload("Author").
		Preload("Category").
		Order("recipes.created_at DESC").
		Order("recipes.id DESC").
		Offset(Offset(page, size)).
		Limit(size).
		Find(&list).Error
	return list, total, err
}

// ListPublished 首页列表，最新在前
func (d *Recipe) ListPublished(ctx context.Context, page, size int) ([]*models.Recipe, int64, error) {
	return d.paginate(d.published(ctx), page, size)
}

func (d *Recipe) ListByCategory(ctx context.Context, categoryID uint64, page, size int) ([]*models.Recipe, int64, error) {
	return d.paginate(d.published(ctx).Where("recipes.category_id = ?", categoryID), page, size)
}

func (d *Recipe) ListByTag(ctx context.Context, tagID uint64, page, size int) ([]*models.Recipe, int64, error) {
	query := d.published(ctx).
		Where("recipes.id IN (?)", d.Db.Table("recipe_tags").Select("recipe_id").Where("tag_id = ?", tagID))
	return d.paginate(query, page, size)
}

func (d *Recipe) ListByAuthor(ctx context.Context, authorID uint64, page, size int) ([]*models.Recipe, int64, error) {
	return d.paginate(d.published(ctx).Where("recipes.author_id = ?", authorID), page, size)
}

// likeEscaper LIKE 通配符按字面匹配，MySQL 与 SQLite 都支持 ESCAPE '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// Search 匹配标题、描述、配料、分类名或标签名，子查询保证结果不重复
func (d *Recipe) Search(ctx context.Context, q string, page, size int) ([]*models.Recipe, int64, error) {
	like := containsPattern(q)
	categoryIDs := d.Db.Model(&models.Category{}).Select("id").Where("name LIKE ? ESCAPE '!'", like)
	taggedIDs := d.Db.Table("recipe_tags").
		Select("recipe_tags.recipe_id").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("tags.name LIKE ? ESCAPE '!'", like)

	query := d.published(ctx).Where(
		d.Db.Where("recipes.title LIKE ? ESCAPE '!'", like).
			Or("recipes.description LIKE ? ESCAPE '!'", like).
			Or("recipes.ingredients LIKE ? ESCAPE '!'", like).
			Or("recipes.category_id IN (?)", categoryIDs).
			Or("recipes.id IN (?)", taggedIDs),
	)
	return d.paginate(query, page, size)
}

// Recommended 同分类下的其他已发布食谱
func (d *Recipe) Recommended(ctx context.Context, categoryID, excludeID uint64, limit int) ([]*models.Recipe, error) {
	var list []*models.Recipe
	err := d.published(ctx).
		Where("recipes.category_id = ? AND recipes.id <> ?", categoryID, excludeID).
		Order("recipes.created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (d *Recipe) LikeCount(ctx context.Context, recipeID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Like{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

func (d *Recipe) FavoriteCount(ctx context.Context, recipeID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Favorite{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

func (d *Recipe) RatingStats(ctx context.Context, recipeID uint64) (RatingStats, error) {
	var stats RatingStats
	err := d.Db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&stats).Error
	return stats, err
}

// ReplaceSteps 删除旧步骤后整体写入
func ReplaceSteps(tx *gorm.DB, recipeID uint64, steps []models.RecipeStep) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeStep{}).Error; err != nil {
		return err
	}
	if len(steps) == 0 {
		return nil
	}
	for i := range steps {
		steps[i].ID = 0
		steps[i].RecipeID = recipeID
	}
	return tx.Create(&steps).Error
}

// ReplaceTags 清空标签关联后重新挂载
func ReplaceTags(tx *gorm.DB, recipe *models.Recipe, tags []models.Tag) error {
	if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID).Error; err != nil {
		return err
	}
	recipe.Tags = tags
	if len(tags) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, map[string]any{"recipe_id": recipe.ID, "tag_id": tag.ID})
	}
	return tx.Table("recipe_tags").Create(rows).Error
}

// DeleteCascade 删除食谱及其评论、点赞、收藏、评分、步骤和关联关系，购物项只清空来源
func DeleteCascade(tx *gorm.DB, recipeID uint64) error {
	steps := []func() error{
		func() error {
			return tx.Where("recipe_id = ? AND parent_id IS NOT NULL", recipeID).Delete(&models.Comment{}).Error
		},
		func() error { return tx.Where("recipe_id = ?", recipeID).Delete(&models.Comment{}).Error },
		func() error { return tx.Where("recipe_id = ?", recipeID).Delete(&models.Like{}).Error },
		func() error { return tx.Where("recipe_id = ?", recipeID).Delete(&models.Favorite{}).Error },
		func() error { return tx.Where("recipe_id = ?", recipeID).Delete(&models.Rating{}).Error },
		func() error { return tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeStep{}).Error },
		func() error { return tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID).Error },
		func() error { return tx.Exec("DELETE FROM cookbook_recipes WHERE recipe_id = ?", recipeID).Error },
		func() error {
			return tx.Model(&models.ShoppingItem{}).
				Where("recipe_id = ?", recipeID).
				Update("recipe_id", nil).Error
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	res := tx.Delete(&models.Recipe{}, recipeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
