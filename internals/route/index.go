package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educore_backend/internals/configs"
	academicsRoute "educore_backend/internals/features/academics/route"
	authRoute "educore_backend/internals/features/users/auth/route"
	authMiddleware "educore_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// PUBLIC → read-only academics + reports
	log.Println("[INFO] Setting up PUBLIC academics group...")
	public := app.Group("/api")
	academicsRoute.PublicAcademicsRoutes(public, db)

	// PROTECTED → mutations require a valid token
	log.Println("[INFO] Setting up PROTECTED academics group...")
	protected := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret: configs.JWTSecret,
		}),
	)
	academicsRoute.ProtectedAcademicsRoutes(protected, db)
}
