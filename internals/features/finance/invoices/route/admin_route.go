package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/invoices/controller"
)

func AdminInvoiceRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewInvoiceHandler(db)

	inv := r.Group("/invoices")
	inv.Get("/", h.List)
	inv.Get("/:id", h.Detail)
	inv.Delete("/:id", h.Delete)
}
