//go:build wireinject
// +build wireinject

package di

import (
	"daily/config"
	"daily/infras/otel"
	"daily/infras/postgres"
	"daily/infras/redis"
	"daily/shared/cache"
	"daily/transport/http"
	"daily/transport/http/middleware"
	"daily/transport/http/router"

	accountRepository "daily/internal/domains/account/repository"
	accountService "daily/internal/domains/account/service"
	memoRepository "daily/internal/domains/memo/repository"
	memoService "daily/internal/domains/memo/service"
	todoRepository "daily/internal/domains/todo/repository"
	todoService "daily/internal/domains/todo/service"

	accountHandler "daily/internal/handlers/account"
	memoHandler "daily/internal/handlers/memo"
	todoHandler "daily/internal/handlers/todo"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
)

var memoDomain = wire.NewSet(
	memoRepository.New,
	memoService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	accountDomain,
	memoDomain,
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	accountHandler.New,
	memoHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
