package main

import (
	"context"
	"daily/config"
	"daily/di"
	"daily/helper"
	"daily/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app := di.InitializeService()

	app.HTTP.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	app.Close(ctx)
}
