package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sakay/cmd/fx/account_fx"
	"sakay/cmd/fx/booking_fx"
	"sakay/cmd/fx/cancellation_fx"
	"sakay/cmd/fx/db_fx"
	"sakay/cmd/fx/payout_fx"
	"sakay/cmd/fx/redis_fx"
	"sakay/cmd/fx/settings_fx"
	"sakay/cmd/fx/vehicle_fx"
	"sakay/cmd/fx/verification_fx"
	"sakay/internal/api/controllers"
	"sakay/internal/models/db_models"
	"sakay/pkg/middleware"
	"sakay/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	utils.RegisterBindingRules()

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		account_fx.Module,
		vehicle_fx.Module,
		settings_fx.Module,
		booking_fx.Module,
		cancellation_fx.Module,
		payout_fx.Module,
		verification_fx.Module,

		fx.Invoke(Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Vehicle{},
		&db_models.Booking{},
		&db_models.Cancellation{},
		&db_models.RefundTransaction{},
		&db_models.PayoutMethod{},
		&db_models.PayoutTransaction{},
		&db_models.PlatformSettings{},
		&db_models.IdentityVerification{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	vehicleController *controllers.VehicleController,
	bookingController *controllers.BookingController,
	cancellationController *controllers.CancellationController,
	payoutController *controllers.PayoutController,
	verificationController *controllers.VerificationController,
	settingsController *controllers.SettingsController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		vehicleController,
		bookingController,
		cancellationController,
		payoutController,
		verificationController,
		settingsController,
	)
	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	vehicleController *controllers.VehicleController,
	bookingController *controllers.BookingController,
	cancellationController *controllers.CancellationController,
	payoutController *controllers.PayoutController,
	verificationController *controllers.VerificationController,
	settingsController *controllers.SettingsController,
) {
	// Public
	r.POST("/auth/register", accountController.Register)
	r.POST("/auth/login", accountController.Login)
	r.GET("/vehicles", vehicleController.Search)
	r.GET("/vehicles/:vehicleId", vehicleController.GetByID)
	r.GET("/policy", accountController.Policy)

	// Authenticated
	auth := r.Group("/", middleware.JWTAuthMiddleware())
	auth.GET("/me", accountController.Profile)
	auth.GET("/me/policy", accountController.Policy)
	auth.GET("/me/vehicles", vehicleController.ListMine)
	auth.GET("/me/bookings", bookingController.ListMine)
	auth.GET("/me/hosted-bookings", bookingController.ListHosted)

	auth.POST("/vehicles", vehicleController.Create)
	auth.PUT("/vehicles/:vehicleId", vehicleController.Update)
	auth.DELETE("/vehicles/:vehicleId", vehicleController.Delete)

	auth.POST("/bookings", bookingController.Create)
	auth.GET("/bookings/:bookingId", bookingController.GetByID)
	auth.POST("/bookings/:bookingId/confirm", bookingController.Confirm)
	auth.GET("/bookings/:bookingId/refund-quote", bookingController.QuoteRefund)
	auth.POST("/bookings/:bookingId/cancel", bookingController.Cancel)

	auth.POST("/payout-methods", payoutController.AddMethod)
	auth.GET("/payout-methods", payoutController.ListMethods)
	auth.PATCH("/payout-methods/:methodId", payoutController.UpdateMethod)
	auth.POST("/payout-methods/:methodId/primary", payoutController.SetPrimaryMethod)
	auth.DELETE("/payout-methods/:methodId", payoutController.DeleteMethod)

	auth.POST("/verifications", verificationController.Submit)

	// Admin desk
	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/verifications", verificationController.ListPending)
	admin.POST("/verifications/:verificationId/approve", verificationController.Approve)
	admin.POST("/verifications/:verificationId/reject", verificationController.Reject)

	admin.GET("/refunds", cancellationController.ListPendingRefunds)
	admin.GET("/refunds/:cancellationId", cancellationController.GetByID)
	admin.POST("/refunds/:cancellationId/settle", cancellationController.SettleRefund)

	admin.GET("/payouts/unpaid/:hostId", payoutController.UnpaidEarnings)
	admin.POST("/payouts", payoutController.ProcessPayout)
	admin.GET("/payouts", payoutController.ListTransactions)
	admin.POST("/payout-methods/:methodId/verify", payoutController.VerifyMethod)

	admin.GET("/settings", settingsController.Get)
	admin.PUT("/settings", settingsController.Update)
}
