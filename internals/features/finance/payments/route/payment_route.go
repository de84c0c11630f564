package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/payments/controller"
)

// AdminPaymentRoutes covers the operator-facing surface.
func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentHandler(db)

	pay := r.Group("/payments")
	pay.Get("/", h.List)
	pay.Post("/snap", h.SnapCheckout)
}

// PublicPaymentRoutes is the gateway callback; it carries no auth, the
// gateway cannot hold a bearer token.
func PublicPaymentRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentHandler(db)

	r.Post("/payments/notify", h.Notify)
}
