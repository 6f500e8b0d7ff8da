package di

import (
	"context"
	"daily/infras/otel"
	"daily/infras/postgres"
	"daily/transport/http"

	"github.com/rs/zerolog/log"
)

// App is the wired process: the HTTP server plus the resources it must release on exit.
type App struct {
	HTTP *http.HTTP
	Otel otel.Otel
	DB   *postgres.Connection
}

// Close flushes pending spans and closes the database pools.
func (a *App) Close(ctx context.Context) {
	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	a.DB.Close()
}
