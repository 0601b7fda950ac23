package models

import (
	"time"
)

type UserFollow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_pair,priority:1" json:"follower_id"`                                  // 关注人
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follow_pair,priority:2;index:idx_follow_following" json:"following_id"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"following,omitempty"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}
