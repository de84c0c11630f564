package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/transactions/controller"
)

func AdminTransactionRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewTransactionHandler(db)

	tx := r.Group("/transactions")
	tx.Get("/", h.List)
	tx.Post("/", h.RecordPayment)
	tx.Post("/revert", h.Revert)
}
