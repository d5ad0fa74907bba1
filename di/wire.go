//go:build wireinject
// +build wireinject

package di

import (
	"basera/config"
	"basera/infras/jwt"
	"basera/infras/kafka"
	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/infras/redis"
	"basera/infras/s3"
	"basera/internal/events"
	"basera/internal/scheduler"
	"basera/permissions"
	"basera/shared/cache"
	"basera/transport/http"
	"basera/transport/http/middleware"
	"basera/transport/http/router"

	bedHandler "basera/internal/handlers/bed"
	bookingHandler "basera/internal/handlers/booking"
	invoiceHandler "basera/internal/handlers/invoice"
	messHandler "basera/internal/handlers/mess"
	pricingHandler "basera/internal/handlers/pricing"
	propertyHandler "basera/internal/handlers/property"
	roomHandler "basera/internal/handlers/room"
	transactionHandler "basera/internal/handlers/transaction"

	bedRepository "basera/internal/domains/bed/repository"
	bedService "basera/internal/domains/bed/service"
	bookingRepository "basera/internal/domains/booking/repository"
	bookingService "basera/internal/domains/booking/service"
	invoiceRepository "basera/internal/domains/invoice/repository"
	invoiceService "basera/internal/domains/invoice/service"
	messRepository "basera/internal/domains/mess/repository"
	messService "basera/internal/domains/mess/service"
	pricingRepository "basera/internal/domains/pricing/repository"
	pricingService "basera/internal/domains/pricing/service"
	propertyRepository "basera/internal/domains/property/repository"
	propertyService "basera/internal/domains/property/service"
	roomRepository "basera/internal/domains/room/repository"
	roomService "basera/internal/domains/room/service"
	transactionRepository "basera/internal/domains/transaction/repository"
	transactionService "basera/internal/domains/transaction/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bedDomain = wire.NewSet(
	bedRepository.New,
	bedRepository.NewElectricityReading,
	bedService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var messDomain = wire.NewSet(
	messRepository.NewMessMenu,
	messRepository.NewMealSelection,
	messService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	roomDomain,
	bedDomain,
	pricingDomain,
	bookingDomain,
	messDomain,
	invoiceDomain,
	transactionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	roomHandler.New,
	bedHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	messHandler.New,
	invoiceHandler.New,
	transactionHandler.New,
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

func InitializeScheduler() *scheduler.Scheduler {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		scheduler.New,
	)

	return &scheduler.Scheduler{}
}
