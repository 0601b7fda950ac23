package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// CdnDomain 对外访问域名，为空时使用 bucket.endpoint
	CdnDomain string `json:"cdn_domain" yaml:"cdn_domain"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
