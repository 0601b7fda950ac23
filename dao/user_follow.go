package dao

import (
	"Cookhub/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// Toggle 已关注则取消，否则关注
func (d *UserFollowDAO) Toggle(ctx context.Context, followerID, followingID uint64) (following, inserted bool, err error) {
	row := &models.UserFollow{FollowerID: followerID, FollowingID: followingID, CreatedAt: time.Now()}
	return toggle(d.Db.WithContext(ctx), row, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// GetFollowerCount 获取粉丝数
func (d *UserFollowDAO) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "following_id = ?", userID)
}

// GetFollowingCount 获取关注数
func (d *UserFollowDAO) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "follower_id = ?", userID)
}

// FollowerIDs 扇出时实时枚举全部粉丝
func (d *UserFollowDAO) FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("following_id = ?", userID).
		Order("id ASC").
		Pluck("follower_id", &ids).Error
	return ids, err
}

// ListFollowing 我关注的人
func (d *UserFollowDAO) ListFollowing(ctx context.Context, userID uint64, page, size int) ([]*models.UserFollow, int64, error) {
	return d.list(ctx, "follower_id = ?", "Following", userID, page, size)
}

// ListFollowers 关注我的人
func (d *UserFollowDAO) ListFollowers(ctx context.Context, userID uint64, page, size int) ([]*models.UserFollow, int64, error) {
	return d.list(ctx, "following_id = ?", "Follower", userID, page, size)
}

func (d *UserFollowDAO) list(ctx context.Context, where, preload string, userID uint64, page, size int) ([]*models.UserFollow, int64, error) {
	total, err := d.Count(ctx, where, userID)
	if err != nil {
		return nil, 0, err
	}

	var list []*models.UserFollow
	err = d.Db.WithContext(ctx).
		Preload(preload).
		Preload(preload+".Profile").
		Where(where, userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(Offset(page, size)).
		Limit(size).
		Find(&list).Error
	return list, total, err
}
