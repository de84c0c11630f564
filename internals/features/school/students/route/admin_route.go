package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "hocphi_backend/internals/features/school/students/controller"
)

func AdminStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentHandler(db)
	s := r.Group("/students")
	{
		s.Get("/", ctl.List)
		s.Post("/", ctl.Create)
		s.Post("/import", ctl.ImportCSV)
		s.Get("/export", ctl.ExportCSV)
		s.Post("/promote", ctl.Promote)
		s.Get("/:mshs", ctl.Detail)
		s.Patch("/:mshs", ctl.Update)
		s.Delete("/:mshs", ctl.Withdraw)
	}
}
