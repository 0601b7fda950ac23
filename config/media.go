package config

const (
	MediaDriverLocal = "local"
	MediaDriverOss   = "oss"
)

// MediaConfig 图片等媒体文件存储配置
type MediaConfig struct {
	Driver  string `json:"driver" yaml:"driver"`     // local | oss
	Root    string `json:"root" yaml:"root"`         // local 模式下的根目录
	BaseURL string `json:"base_url" yaml:"base_url"` // local 模式下对外访问前缀
}

func ProvideMediaConfig(cfg *Config) *MediaConfig {
	return cfg.Media
}
