package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/exports/controller"
)

func AdminExportRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewExportHandler(db)

	ex := r.Group("/exports")
	ex.Get("/listings.xlsx", h.ListingsXLSX)
	ex.Get("/transactions.csv", h.TransactionsCSV)
}
