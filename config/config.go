package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Media    *MediaConfig    `json:"media" yaml:"media"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Notify   *NotifyConfig   `json:"notify" yaml:"notify"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析配置内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Name == "" {
		c.App.Name = "cookhub"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 7 * 24 * 3600
	}
	if c.Media == nil {
		c.Media = &MediaConfig{}
	}
	if c.Media.Driver == "" {
		c.Media.Driver = MediaDriverLocal
	}
	if c.Media.Root == "" {
		c.Media.Root = "media"
	}
	if c.Media.BaseURL == "" {
		c.Media.BaseURL = "/media"
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.RocketMQ.Topic == "" {
		c.RocketMQ.Topic = "cookhub_notice_events"
	}
	if c.Notify == nil {
		c.Notify = &NotifyConfig{}
	}
	if c.Notify.Dispatcher == "" {
		c.Notify.Dispatcher = DispatcherInline
	}
	if c.Notify.BatchSize <= 0 {
		c.Notify.BatchSize = 200
	}
	if c.Notify.RetryInterval <= 0 {
		c.Notify.RetryInterval = 30
	}
	if c.Notify.UnreadCacheTTL <= 0 {
		c.Notify.UnreadCacheTTL = 600
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
