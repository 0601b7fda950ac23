package config

const (
	DispatcherInline   = "inline"
	DispatcherRocketMQ = "rocketmq"
)

// NotifyConfig 通知扇出配置
type NotifyConfig struct {
	// Dispatcher 新食谱通知的投递方式 inline | rocketmq
	Dispatcher string `yaml:"dispatcher"`
	// BatchSize 扇出时每批写入的通知数
	BatchSize int `yaml:"batch_size"`
	// RetryInterval 未确认 outbox 事件的重投间隔（秒）
	RetryInterval int `yaml:"retry_interval"`
	// UnreadCacheTTL 未读数缓存有效期（秒）
	UnreadCacheTTL int `yaml:"unread_cache_ttl"`
}

func ProvideNotifyConfig(cfg *Config) *NotifyConfig {
	return cfg.Notify
}
