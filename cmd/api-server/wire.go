//go:build wireinject
// +build wireinject

package main

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/dao/cache"
	"Cookhub/handler"
	"Cookhub/pkg/client"
	"Cookhub/pkg/database"
	"Cookhub/pkg/server"
	"Cookhub/service"
	"Cookhub/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideNotifyConfig,
		cache.ProviderSet,
		dao.ProviderSet,
		socket.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Engagement), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Shopping), "*"),
		wire.Struct(new(handler.Cookbook), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Media), "*"),
		wire.Struct(new(handler.WebSocket), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil, nil
}

func InitConsumer(cfg *config.Config) (*service.NoticeConsumer, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideNotifyConfig,
		config.ProvideRocketMQConfig,
		cache.ProviderSet,
		dao.ProviderSet,
		socket.ProviderSet,
		service.ConsumerSet,
	)
	return nil, nil, nil
}
