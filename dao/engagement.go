package dao

import (
	"Cookhub/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Like struct {
	Repo[models.Like]
}

func NewLike(db *gorm.DB) *Like {
	return &Like{
		Repo: NewRepo[models.Like](db),
	}
}

// Toggle 已存在则删除，否则插入。inserted 仅在本次调用真正写入时为 true
func (d *Like) Toggle(ctx context.Context, userID, recipeID uint64) (active, inserted bool, err error) {
	return toggle(d.Db.WithContext(ctx), &models.Like{UserID: userID, RecipeID: recipeID, CreatedAt: time.Now()},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (d *Like) IsLiked(ctx context.Context, userID, recipeID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

type Favorite struct {
	Repo[models.Favorite]
}

func NewFavorite(db *gorm.DB) *Favorite {
	return &Favorite{
		Repo: NewRepo[models.Favorite](db),
	}
}

func (d *Favorite) Toggle(ctx context.Context, userID, recipeID uint64) (active, inserted bool, err error) {
	return toggle(d.Db.WithContext(ctx), &models.Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: time.Now()},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (d *Favorite) IsFavorited(ctx context.Context, userID, recipeID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

// ListRecipes 用户收藏的食谱，按收藏时间倒序
func (d *Favorite) ListRecipes(ctx context.Context, userID uint64, page, size int) ([]*models.Recipe, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []*models.Favorite
	err := d.Db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Author").
		Preload("Recipe.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(Offset(page, size)).
		Limit(size).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}

	list := make([]*models.Recipe, 0, len(favorites))
	for _, f := range favorites {
		if f.Recipe != nil {
			list = append(list, f.Recipe)
		}
	}
	return list, total, nil
}

type Rating struct {
	Repo[models.Rating]
}

func NewRating(db *gorm.DB) *Rating {
	return &Rating{
		Repo: NewRepo[models.Rating](db),
	}
}

// Upsert 同一用户对同一食谱只保留一条评分
func (d *Rating) Upsert(ctx context.Context, userID, recipeID uint64, score int) error {
	now := time.Now()
	rating := &models.Rating{
		UserID:    userID,
		RecipeID:  recipeID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

// UserScore 未评分时返回 0
func (d *Rating) UserScore(ctx context.Context, userID, recipeID uint64) (int, error) {
	rating, err := d.FindByWhere(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
	if IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rating.Score, nil
}

func toggle(db *gorm.DB, row any, where string, args ...any) (active, inserted bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(where, args...).Delete(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		// 并发插入由唯一索引兜底，冲突时视为已激活但不算本次写入
		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if res.Error != nil {
			return res.Error
		}
		active = true
		inserted = res.RowsAffected == 1
		return nil
	})
	return active, inserted, err
}
