//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"epoch/config"
	"epoch/infras/otel"
	"epoch/infras/redis"
	"epoch/shared/cache"
	"epoch/transport/http"
	"epoch/transport/http/middleware"
	"epoch/transport/http/router"
	"epoch/web"

	conversionService "epoch/internal/domains/conversion/service"
	timezoneService "epoch/internal/domains/timezone/service"

	conversionHandler "epoch/internal/handlers/conversion"
	timezoneHandler "epoch/internal/handlers/timezone"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	conversionService.New,
	timezoneService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	conversionHandler.New,
	timezoneHandler.New,
	web.New,
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
