package handler

import (
	"daily/config"
	"daily/di"
	"daily/shared/logger"
	"net/http"
	"sync"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler is the serverless entrypoint; the process is wired once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg)

		app = di.InitializeService().HTTP.Handler()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
