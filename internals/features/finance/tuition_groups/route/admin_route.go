package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "hocphi_backend/internals/features/finance/tuition_groups/controller"
)

func AdminTuitionGroupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupController.NewTuitionGroupHandler(db)
	g := r.Group("/tuition-groups")
	{
		g.Get("/", ctl.List)
		g.Post("/", ctl.Create)
		g.Get("/:id", ctl.Detail)
		g.Get("/:id/owed", ctl.OwedProbe)
		g.Patch("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}
