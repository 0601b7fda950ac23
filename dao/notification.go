package dao

import (
	"Cookhub/models"
	"Cookhub/pkg/utils"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Notification struct {
	Repo[models.Notification]
}

func NewNotification(db *gorm.DB) *Notification {
	return &Notification{
		Repo: NewRepo[models.Notification](db),
	}
}

// CreateBatch 批量写入，(event_id, recipient_id) 冲突的行直接跳过
func (d *Notification) CreateBatch(ctx context.Context, list []*models.Notification, batchSize int) (int64, error) {
	if len(list) == 0 {
		return 0, nil
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(list, batchSize)
	return res.RowsAffected, res.Error
}

func (d *Notification) List(ctx context.Context, recipientID uint64, page, size int) ([]*models.Notification, int64, error) {
	total, err := d.Count(ctx, "recipient_id = ?", recipientID)
	if err != nil {
		return nil, 0, err
	}

	var list []*models.Notification
	err = d.Db.WithContext(ctx).
		Preload("Sender").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(Offset(page, size)).
		Limit(size).
		Find(&list).Error
	return list, total, err
}

func (d *Notification) UnreadCount(ctx context.Context, recipientID uint64) (int64, error) {
	return d.Count(ctx, "recipient_id = ? AND is_read = ?", recipientID, false)
}

// MarkAllRead 批量标记已读
func (d *Notification) MarkAllRead(ctx context.Context, recipientID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkRead 只能操作自己的通知
func (d *Notification) MarkRead(ctx context.Context, recipientID, id uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (d *Notification) DeleteOwned(ctx context.Context, recipientID, id uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

type NoticeOutbox struct {
	Repo[models.NoticeOutbox]
}

func NewNoticeOutbox(db *gorm.DB) *NoticeOutbox {
	return &NoticeOutbox{
		Repo: NewRepo[models.NoticeOutbox](db),
	}
}

func (d *NoticeOutbox) Get(ctx context.Context, id int64) (*models.NoticeOutbox, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

func (d *NoticeOutbox) MarkDone(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.NoticeOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": models.OutboxDone, "updated_at": time.Now()}).Error
}

// MarkAttempt 记录一次投递失败
func (d *NoticeOutbox) MarkAttempt(ctx context.Context, id int64, cause string) error {
	cause = utils.Truncate(cause, 500)
	return d.Db.WithContext(ctx).
		Model(&models.NoticeOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": cause,
			"updated_at": time.Now(),
		}).Error
}

// ListStale 超过 before 仍未完成的事件
func (d *NoticeOutbox) ListStale(ctx context.Context, before time.Time, limit int) ([]*models.NoticeOutbox, error) {
	var list []*models.NoticeOutbox
	err := d.Db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", models.OutboxPending, before).
		Order("updated_at ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
