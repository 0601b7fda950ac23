package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn access token 有效期（秒）
	ExpiresIn int64 `json:"expires_in" yaml:"expires_in"`
}
