package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/listings/controller"
)

func AdminListingRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewListingHandler(db)

	ls := r.Group("/listings")
	ls.Get("/", h.List)
	ls.Post("/rebuild", h.Rebuild)
	ls.Get("/:mshs", h.History)
}
