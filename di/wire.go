//go:build wireinject
// +build wireinject

package di

import (
	"demobook/config"
	"demobook/infras/otel"
	"demobook/infras/postgres"
	"demobook/infras/redis"
	bookingHandler "demobook/internal/handlers/booking"
	healthHandler "demobook/internal/handlers/health"
	"demobook/shared/cache"
	"demobook/transport/http"
	"demobook/transport/http/middleware"
	"demobook/transport/http/router"

	bookingNotifier "demobook/internal/domains/booking/notifier"
	bookingRepository "demobook/internal/domains/booking/repository"
	bookingService "demobook/internal/domains/booking/service"

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
	middleware.NewAdminAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingNotifier.New,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
