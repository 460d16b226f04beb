package verification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/internal/api/controllers"
	"sakay/internal/repositories"
	"sakay/internal/services"
)

var Module = fx.Provide(provideVerificationRepo, provideVerificationService, provideVerificationController)

func provideVerificationRepo(db *gorm.DB) repositories.VerificationRepository {
	return repositories.NewVerificationRepository(db)
}

func provideVerificationService(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
) services.VerificationServiceInterface {
	return services.NewVerificationService(verificationRepo, userRepo)
}

func provideVerificationController(verificationService services.VerificationServiceInterface) *controllers.VerificationController {
	return controllers.NewVerificationController(verificationService)
}
