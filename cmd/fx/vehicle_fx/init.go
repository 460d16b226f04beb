package vehicle_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/internal/api/controllers"
	"sakay/internal/repositories"
	"sakay/internal/services"
)

var Module = fx.Provide(provideVehicleRepo, provideVehicleService, provideVehicleController)

func provideVehicleRepo(db *gorm.DB) repositories.VehicleRepository {
	return repositories.NewVehicleRepository(db)
}

func provideVehicleService(
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	cache *redis.Client,
) services.VehicleServiceInterface {
	return services.NewVehicleService(vehicleRepo, userRepo, cache)
}

func provideVehicleController(vehicleService services.VehicleServiceInterface) *controllers.VehicleController {
	return controllers.NewVehicleController(vehicleService)
}
