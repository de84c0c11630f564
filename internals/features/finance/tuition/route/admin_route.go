package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/tuition/controller"
)

func AdminTuitionRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewBalanceHandler(db)

	r.Get("/balance/:mshs", h.Probe)
	r.Get("/revenue", h.Revenue)
}
