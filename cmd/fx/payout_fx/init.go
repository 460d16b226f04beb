package payout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/internal/api/controllers"
	"sakay/internal/repositories"
	"sakay/internal/services"
)

var Module = fx.Provide(
	providePayoutRepo,
	providePayoutMethodRepo,
	providePayoutService,
	providePayoutMethodService,
	providePayoutController,
)

func providePayoutRepo(db *gorm.DB) repositories.PayoutRepository {
	return repositories.NewPayoutRepository(db)
}

func providePayoutMethodRepo(db *gorm.DB) repositories.PayoutMethodRepository {
	return repositories.NewPayoutMethodRepository(db)
}

func providePayoutService(
	payoutRepo repositories.PayoutRepository,
	methodRepo repositories.PayoutMethodRepository,
	bookingRepo repositories.BookingRepository,
) services.PayoutServiceInterface {
	return services.NewPayoutService(payoutRepo, methodRepo, bookingRepo)
}

func providePayoutMethodService(methodRepo repositories.PayoutMethodRepository) services.PayoutMethodServiceInterface {
	return services.NewPayoutMethodService(methodRepo)
}

func providePayoutController(
	payoutService services.PayoutServiceInterface,
	methodService services.PayoutMethodServiceInterface,
) *controllers.PayoutController {
	return controllers.NewPayoutController(payoutService, methodService)
}
