//go:build wireinject
// +build wireinject

package di

import (
	"freeroom/config"
	"freeroom/infras/kafka"
	"freeroom/infras/otel"
	"freeroom/infras/postgres"
	"freeroom/infras/quickstudio"
	"freeroom/infras/redis"
	availabilityHandler "freeroom/internal/handlers/availability"
	studioHandler "freeroom/internal/handlers/studio"
	"freeroom/shared/cache"
	"freeroom/transport/http"
	"freeroom/transport/http/middleware"
	"freeroom/transport/http/router"

	availabilityService "freeroom/internal/domains/availability/service"
	studioRepository "freeroom/internal/domains/studio/repository"
	studioService "freeroom/internal/domains/studio/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	quickstudio.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var studioDomain = wire.NewSet(
	studioRepository.New,
	studioService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	studioDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	studioHandler.New,
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
