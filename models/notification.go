package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationFollow   NotificationType = "follow"
	NotificationLike     NotificationType = "like"
	NotificationComment  NotificationType = "comment"
	NotificationFavorite NotificationType = "favorite"
	NotificationRecipe   NotificationType = "recipe"
)

// Notification 标题/内容/链接在创建时渲染好，读取时不再计算
type Notification struct {
	ID          uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipientID uint64           `gorm:"column:recipient_id;not null;index:idx_notifications_recipient_read,priority:1;uniqueIndex:uk_notifications_event_recipient,priority:2" json:"recipient_id"`
	SenderID    uint64           `gorm:"column:sender_id;not null" json:"sender_id"`
	Type        NotificationType `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Title       string           `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Message     string           `gorm:"column:message;type:text" json:"message"`
	Link        string           `gorm:"column:link;type:varchar(255);not null;default:''" json:"link"`
	IsRead      bool             `gorm:"column:is_read;not null;default:false;index:idx_notifications_recipient_read,priority:2" json:"is_read"`
	EventID     *int64           `gorm:"column:event_id;uniqueIndex:uk_notifications_event_recipient,priority:1" json:"-"` // 扇出事件ID，防止重复投递
	CreatedAt   time.Time        `gorm:"column:created_at;index:idx_notifications_created" json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

const (
	OutboxPending = "pending"
	OutboxDone    = "done"
)

// NoticeOutbox 异步扇出事件，消费者确认前保持 pending
type NoticeOutbox struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"` // snowflake
	EventType string         `gorm:"column:event_type;type:varchar(50);not null" json:"event_type"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	Status    string         `gorm:"column:status;type:varchar(20);not null;index:idx_outbox_status_updated,priority:1" json:"status"`
	Attempts  int            `gorm:"column:attempts;not null;default:0" json:"attempts"`
	LastError string         `gorm:"column:last_error;type:varchar(500);not null;default:''" json:"last_error"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index:idx_outbox_status_updated,priority:2" json:"updated_at"`
}

func (NoticeOutbox) TableName() string {
	return "notice_outbox"
}
