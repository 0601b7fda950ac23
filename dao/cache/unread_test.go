package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	ctx := context.Background()
	s := NewUnreadStorage(rds, time.Minute)

	_, ok, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, 1, 5))
	require.NoError(t, s.Set(ctx, 2, 0))
	count, ok, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), count)
	assert.Equal(t, time.Minute, mr.TTL("cookhub:notice:unread:1"))

	// 0 也算命中
	count, ok, err = s.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, count)

	require.NoError(t, s.Del(ctx, 1, 2))
	require.NoError(t, s.Del(ctx))
	_, ok, err = s.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)
	require.NoError(t, s.Set(ctx, 3, 1))
	mr.FastForward(2 * time.Minute)
	_, ok, err = s.Get(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}
