package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type UnreadStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewUnreadStorage(rds *redis.Client, ttl time.Duration) *UnreadStorage {
	return &UnreadStorage{redis: rds, ttl: ttl}
}

// Get 获取未读通知数，ok 为 false 表示未命中
// @params uid 接收者ID
func (u *UnreadStorage) Get(ctx context.Context, uid uint64) (count int64, ok bool, err error) {
	count, err = u.redis.Get(ctx, u.name(uid)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// Set 回填未读数
// @params uid   接收者ID
// @params count 数据库中的未读数
func (u *UnreadStorage) Set(ctx context.Context, uid uint64, count int64) error {
	return u.redis.Set(ctx, u.name(uid), count, u.ttl).Err()
}

// Del 接收者的通知有任何写入时失效
// @params uids 接收者ID
func (u *UnreadStorage) Del(ctx context.Context, uids ...uint64) error {
	if len(uids) == 0 {
		return nil
	}
	pipe := u.redis.Pipeline()
	for _, uid := range uids {
		pipe.Del(ctx, u.name(uid))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// cookhub:notice:unread:uid
func (u *UnreadStorage) name(uid uint64) string {
	return fmt.Sprintf("cookhub:notice:unread:%d", uid)
}
