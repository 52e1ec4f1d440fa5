//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"pms/config"
	"pms/infras/jwt"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/infras/redis"
	"pms/infras/s3"
	"pms/permissions"
	"pms/shared/cache"
	"pms/transport/http"
	"pms/transport/http/middleware"
	"pms/transport/http/router"

	authService "pms/internal/domains/auth/service"
	bookingRepository "pms/internal/domains/booking/repository"
	bookingService "pms/internal/domains/booking/service"
	hotelRepository "pms/internal/domains/hotel/repository"
	hotelService "pms/internal/domains/hotel/service"
	roomRepository "pms/internal/domains/room/repository"
	roomService "pms/internal/domains/room/service"
	statsService "pms/internal/domains/stats/service"
	userRepository "pms/internal/domains/user/repository"
	userService "pms/internal/domains/user/service"

	authHandler "pms/internal/handlers/auth"
	bookingHandler "pms/internal/handlers/booking"
	hotelHandler "pms/internal/handlers/hotel"
	roomHandler "pms/internal/handlers/room"
	statsHandler "pms/internal/handlers/stats"
	userHandler "pms/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomDomain,
	bookingDomain,
	statsDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	statsHandler.New,
	userHandler.New,
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
