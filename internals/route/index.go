package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	paymentRoute "schoolpay_backend/internals/features/payments/route"
	authRoute "schoolpay_backend/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, cfg)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, db, cfg)
}
