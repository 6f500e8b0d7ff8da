package http

import (
	"context"
	"daily/config"
	"daily/infras/metrics"
	"daily/shared/constant"
	"daily/transport/http/middleware"
	"daily/transport/http/response"
	"daily/transport/http/router"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	healthPath         = "/health"
	defaultMetricsPath = "/metrics"
	defaultHost        = "0.0.0.0"
	readHeaderTimeout  = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	middleware middleware.AppMiddleware

	state   atomic.Int32
	once    sync.Once
	handler chi.Router
	server  *http.Server
	done    chan struct{}
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		middleware: mw,
		done:       make(chan struct{}),
	}
}

// Serve blocks until the server has been shut down by SIGTERM or SIGINT.
func (h *HTTP) Serve() {
	host := h.Config.Server.Host
	if host == constant.Empty {
		host = defaultHost
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// Handler returns the fully wired router without binding a listener.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(h.setup)

	return h.handler
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setState(ServerStateReady)
}

func (h *HTTP) setupRoutes() {
	metricsConf := h.Config.App.Metrics

	metricsPath := metricsConf.Path
	if metricsPath == constant.Empty {
		metricsPath = defaultMetricsPath
	}

	h.handler = chi.NewRouter()

	h.handler.Use(
		chiMiddleware.Recoverer,
		h.middleware.RequestID,
		h.middleware.AccessLog,
		h.middleware.Tracing,
	)

	if metricsConf.Enable {
		h.handler.Use(metrics.InstrumentHandler(metricsPath))
	}

	if h.Config.App.CORS.Enable {
		h.handler.Use(h.cors())
	}

	// chi rejects middleware registered after the first route
	if metricsConf.Enable {
		h.handler.Method(http.MethodGet, metricsPath, metrics.Handler())
	}

	h.handler.Get(healthPath, h.health)

	h.handler.Group(func(api chi.Router) {
		api.Use(h.middleware.RateLimit())

		h.Router.SetupRoutes(api)
	})
}

func (h *HTTP) cors() func(http.Handler) http.Handler {
	corsConf := h.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConf.AllowedOrigins,
		AllowedMethods:   corsConf.AllowedMethods,
		AllowedHeaders:   corsConf.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRequestID, constant.RequestHeaderRateLimit, constant.RequestHeaderRateLimitRemaining},
		AllowCredentials: corsConf.AllowCredentials,
		MaxAge:           corsConf.MaxAgeSeconds,
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

// respondToSigterm keeps serving through the grace period while /health reports
// 503, then drains in-flight requests for at most the cleanup period.
func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.done)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(0)

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(timeout time.Duration) {
	ctx := context.Background()

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}
}
