package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "hocphi_backend/internals/features/users/auth/route"
)

func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AdminAuthRoutes(r, db)
}
