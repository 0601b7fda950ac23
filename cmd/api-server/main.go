package main

import (
	"Cookhub/config"
	"Cookhub/dao"
	"Cookhub/pkg/database"
	"Cookhub/pkg/log"
	"Cookhub/pkg/server"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "cookhub recipe sharing service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					if err := dao.AutoMigrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "consume",
				Usage: "consume recipe published events and redispatch pending ones",
				Action: func(ctx *cli.Context) error {
					consumer, cleanup, err := InitConsumer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
					defer stop()
					return consumer.Run(sigCtx)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
