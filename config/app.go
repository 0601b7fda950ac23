package config

type App struct {
	Name     string `json:"name" yaml:"name"`
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	// HashSalt 生成食谱本分享码使用的盐
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}
