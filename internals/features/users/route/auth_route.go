package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/users/controller"
	"schoolpay_backend/internals/features/users/repository"
	"schoolpay_backend/internals/features/users/service"
	"schoolpay_backend/internals/middlewares"
	authMw "schoolpay_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	svc := service.NewAuthService(repository.NewGormUserRepository(db), cfg)
	ctrl := controller.NewAuthController(svc)

	grp := app.Group("/auth")
	grp.Post("/register", ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Get("/profile", authMw.AuthJWT(authMw.AuthJWTOpts{Secret: cfg.JWTSecret}), ctrl.Profile)
}
