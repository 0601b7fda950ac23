package dao

import (
	"Cookhub/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetRootComments 获取一级评论列表(按时间倒序)
func (d *Comment) GetRootComments(ctx context.Context, recipeID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Preload("User.Profile").
		Where("recipe_id = ? AND parent_id IS NULL", recipeID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error
	return comments, err
}

// BatchGetReplies 批量获取多条一级评论的回复(按时间正序)
func (d *Comment) BatchGetReplies(ctx context.Context, rootIDs []uint64) (map[uint64][]*models.Comment, error) {
	result := make(map[uint64][]*models.Comment, len(rootIDs))
	if len(rootIDs) == 0 {
		return result, nil
	}

	var replies []*models.Comment
	err := d.Db.WithContext(ctx).
		Preload("User.Profile").
		Where("parent_id IN ?", rootIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	for _, reply := range replies {
		result[*reply.ParentID] = append(result[*reply.ParentID], reply)
	}
	return result, nil
}

// BatchCountReplies 回复数实时统计
func (d *Comment) BatchCountReplies(ctx context.Context, rootIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(rootIDs))
	if len(rootIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ParentID uint64
		Total    int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("parent_id, COUNT(*) AS total").
		Where("parent_id IN ?", rootIDs).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ParentID] = row.Total
	}
	return result, nil
}

// DeleteWithReplies 删除评论，一级评论连同回复一起删除
func (d *Comment) DeleteWithReplies(ctx context.Context, commentID uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", commentID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, commentID).Error
	})
}
