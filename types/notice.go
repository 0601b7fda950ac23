package types

import "time"

type NotificationItem struct {
	ID        uint64     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      string     `json:"link"`
	IsRead    bool       `json:"is_read"`
	Sender    *UserBrief `json:"sender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// PushMessage websocket 推送帧
type PushMessage struct {
	Event string            `json:"event"`
	Data  *NotificationItem `json:"data"`
}
