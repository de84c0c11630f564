package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/middlewares"
	"hocphi_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public surface under /api/p and the operator
// surface under /api/a. Everything under /api/a requires a bearer token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/p")
	PublicRoutes(public, db, middlewares.LoginRateLimiter())

	admin := api.Group("/a", auth.AuthMiddleware())
	FinanceRoutes(admin, db)
	SchoolRoutes(admin, db)
	AuthAdminRoutes(admin, db)
}
