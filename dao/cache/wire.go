package cache

import (
	"Cookhub/config"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

// ProvideUnreadStorage 过期时间取自 notify.unread_cache_ttl
func ProvideUnreadStorage(rds *redis.Client, conf *config.NotifyConfig) *UnreadStorage {
	return NewUnreadStorage(rds, time.Duration(conf.UnreadCacheTTL)*time.Second)
}

var ProviderSet = wire.NewSet(
	ProvideUnreadStorage,
)
