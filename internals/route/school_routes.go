package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "hocphi_backend/internals/features/school/students/route"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	school := r.Group("/school")

	studentRoute.AdminStudentRoutes(school, db)
}
