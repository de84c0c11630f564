package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/constants"
	"hocphi_backend/internals/features/users/auth/controller"
	"hocphi_backend/internals/middlewares/auth"
)

// PublicAuthRoutes carries login and refresh; the caller attaches the
// login rate limiter.
func PublicAuthRoutes(r fiber.Router, db *gorm.DB, limiter fiber.Handler) {
	h := controller.NewAuthHandler(db)

	r.Post("/login", limiter, h.Login)
	r.Post("/refresh", h.Refresh)
}

// AdminAuthRoutes carries operator management and the identity probe.
func AdminAuthRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthHandler(db)

	r.Get("/me", h.Me)
	r.Post("/operators", auth.RequireRoles(constants.RoleAdmin), h.Register)
}
