package cancellation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/internal/api/controllers"
	"sakay/internal/repositories"
	"sakay/internal/services"
)

var Module = fx.Provide(provideCancellationRepo, provideCancellationService, provideCancellationController)

func provideCancellationRepo(db *gorm.DB) repositories.CancellationRepository {
	return repositories.NewCancellationRepository(db)
}

func provideCancellationService(
	cancellationRepo repositories.CancellationRepository,
	bookingRepo repositories.BookingRepository,
) services.CancellationServiceInterface {
	return services.NewCancellationService(cancellationRepo, bookingRepo)
}

func provideCancellationController(cancellationService services.CancellationServiceInterface) *controllers.CancellationController {
	return controllers.NewCancellationController(cancellationService)
}
