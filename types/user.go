package types

import "time"

// UserBrief 列表、评论、通知中展示的用户信息
type UserBrief struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type ProfileResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest 字段为空表示不修改
type UpdateProfileRequest struct {
	Email  *string `json:"email" binding:"omitempty,email,max=254"`
	Bio    *string `json:"bio" binding:"omitempty,max=500"`
	Avatar *string `json:"avatar" binding:"omitempty,max=255"`
}

type PublicProfileResponse struct {
	ID             uint64    `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	IsSelf         bool      `json:"is_self"`
	JoinedAt       time.Time `json:"joined_at"`
}

type FollowResponse struct {
	Following      bool   `json:"following"`
	FollowersCount int64  `json:"followers_count"`
	Message        string `json:"message"`
}
