package types

import "time"

type CreateCommentRequest struct {
	Content  string  `json:"content" form:"content"`
	ParentID *uint64 `json:"parent_id" form:"parent_id"`
}

type CommentItem struct {
	ID           uint64         `json:"id"`
	Content      string         `json:"content"`
	User         *UserBrief     `json:"user"`
	ParentID     *uint64        `json:"parent_id"`
	CreatedAt    time.Time      `json:"created_at"`
	RepliesCount int64          `json:"replies_count"`
	Replies      []*CommentItem `json:"replies,omitempty"`
}
