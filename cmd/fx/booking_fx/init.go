package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/internal/api/controllers"
	"sakay/internal/repositories"
	"sakay/internal/services"
)

var Module = fx.Provide(provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	settings services.SettingsServiceInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, vehicleRepo, userRepo, settings)
}

func provideBookingController(
	bookingService services.BookingServiceInterface,
	cancellationService services.CancellationServiceInterface,
) *controllers.BookingController {
	return controllers.NewBookingController(bookingService, cancellationService)
}
