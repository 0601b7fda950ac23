package dao

import (
	"Cookhub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Shopping struct {
	Repo[models.ShoppingList]
}

func NewShopping(db *gorm.DB) *Shopping {
	return &Shopping{
		Repo: NewRepo[models.ShoppingList](db),
	}
}

// GetOrCreateList 用户默认清单，并发创建由唯一索引兜底
func (d *Shopping) GetOrCreateList(ctx context.Context, userID uint64) (*models.ShoppingList, error) {
	return GetOrCreateList(d.Db.WithContext(ctx), userID)
}

func GetOrCreateList(tx *gorm.DB, userID uint64) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := tx.Where("user_id = ?", userID).First(&list).Error
	if err == nil {
		return &list, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	created := &models.ShoppingList{UserID: userID, Name: models.DefaultShoppingListName}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(created).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("user_id = ?", userID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Items 未勾选在前，其次按创建时间倒序
func (d *Shopping) Items(ctx context.Context, listID uint64) ([]*models.ShoppingItem, error) {
	var items []*models.ShoppingItem
	err := d.Db.WithContext(ctx).
		Where("shopping_list_id = ?", listID).
		Order("is_checked ASC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (d *Shopping) AddItem(ctx context.Context, item *models.ShoppingItem) error {
	return d.Db.WithContext(ctx).Create(item).Error
}

func (d *Shopping) GetItem(ctx context.Context, listID, itemID uint64) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	err := d.Db.WithContext(ctx).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *Shopping) SetChecked(ctx context.Context, itemID uint64, checked bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.ShoppingItem{}).
		Where("id = ?", itemID).
		Update("is_checked", checked).Error
}

func (d *Shopping) DeleteItem(ctx context.Context, listID, itemID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		Delete(&models.ShoppingItem{})
	return res.RowsAffected, res.Error
}

func (d *Shopping) Clear(ctx context.Context, listID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("shopping_list_id = ?", listID).
		Delete(&models.ShoppingItem{})
	return res.RowsAffected, res.Error
}
