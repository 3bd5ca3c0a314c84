package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "educore_backend/internals/features/users/auth/controller"
	"educore_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
