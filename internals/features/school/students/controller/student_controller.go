package controller

import (
	"bytes"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/school/students/dto"
	studentModel "hocphi_backend/internals/features/school/students/model"
	"hocphi_backend/internals/features/school/students/service"
	helper "hocphi_backend/internals/helpers"
)

type StudentHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{DB: db, Validate: validator.New()}
}

var sortableStudentCols = map[string]string{
	"created_at": "student_created_at",
	"mshs":       "student_mshs",
	"name":       "student_name",
	"grade":      "student_grade",
	"class":      "student_class",
}

// -----------------------------------------
// List (GET /students)
// Filters: grade, class, stay_in, leave_school, q (mshs/name search)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "mshs", "asc", helper.DefaultOpts)

	q := h.DB.Model(&studentModel.Student{})
	if v := c.Query("grade"); v != "" {
		q = q.Where("student_grade = ?", v)
	}
	if v := c.Query("class"); v != "" {
		q = q.Where("student_class = ?", v)
	}
	if v := c.Query("stay_in"); v != "" {
		q = q.Where("student_stay_in = ?", strings.EqualFold(v, "true"))
	}
	if v := c.Query("leave_school"); v != "" {
		q = q.Where("student_leave_school = ?", strings.EqualFold(v, "true"))
	}
	if v := c.Query("q"); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_mshs ILIKE ? OR student_sur_name ILIKE ? OR student_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(sortableStudentCols, "mshs")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []studentModel.Student
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /students/:mshs)
// -----------------------------------------
func (h *StudentHandler) Detail(c *fiber.Ctx) error {
	mshs := c.Params("mshs")
	var m studentModel.Student
	if err := h.DB.First(&m, "student_mshs = ?", mshs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var exists int64
	if err := h.DB.Model(&studentModel.Student{}).
		Where("student_mshs = ?", strings.TrimSpace(in.StudentMSHS)).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "mshs already exists")
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:mshs)
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	mshs := c.Params("mshs")
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m studentModel.Student
	if err := h.DB.First(&m, "student_mshs = ?", mshs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Withdraw (DELETE /students/:mshs) — soft delete
// -----------------------------------------
func (h *StudentHandler) Withdraw(c *fiber.Ctx) error {
	mshs := c.Params("mshs")
	var m studentModel.Student
	if err := h.DB.First(&m, "student_mshs = ?", mshs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student withdrawn", dto.ToStudentResponse(m))
}

// -----------------------------------------
// CSV import (POST /students/import) — multipart "file"
// -----------------------------------------
func (h *StudentHandler) ImportCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot open upload")
	}
	defer f.Close()

	students, report := service.ParseStudentsCSV(f)
	if err := service.ImportStudents(h.DB, students); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "import finished", report)
}

// -----------------------------------------
// CSV export (GET /students/export)
// -----------------------------------------
func (h *StudentHandler) ExportCSV(c *fiber.Ctx) error {
	var list []studentModel.Student
	q := h.DB.Model(&studentModel.Student{}).Order("student_mshs ASC")
	if v := c.Query("grade"); v != "" {
		q = q.Where("student_grade = ?", v)
	}
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := service.WriteStudentsCSV(&buf, list); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return c.Send(buf.Bytes())
}

// -----------------------------------------
// Promotion (POST /students/promote) — yearly batch
// -----------------------------------------
func (h *StudentHandler) Promote(c *fiber.Ctx) error {
	summary, err := service.PromoteAll(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "promotion finished", summary)
}
