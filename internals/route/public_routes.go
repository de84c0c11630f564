package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "hocphi_backend/internals/features/finance/payments/route"
	authRoute "hocphi_backend/internals/features/users/auth/route"
)

func PublicRoutes(r fiber.Router, db *gorm.DB, loginLimiter fiber.Handler) {
	r.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	authRoute.PublicAuthRoutes(r, db, loginLimiter)
	paymentRoute.PublicPaymentRoutes(r, db)
}
