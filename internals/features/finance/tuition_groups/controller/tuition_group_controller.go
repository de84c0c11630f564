package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/tuition"
	"hocphi_backend/internals/features/finance/tuition_groups/dto"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	helper "hocphi_backend/internals/helpers"
)

type TuitionGroupHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTuitionGroupHandler(db *gorm.DB) *TuitionGroupHandler {
	return &TuitionGroupHandler{DB: db, Validate: validator.New()}
}

var sortableGroupCols = map[string]string{
	"created_at": "tuition_group_created_at",
	"code":       "tuition_group_code",
	"grade":      "tuition_group_grade",
	"group":      "tuition_group_group",
	"amount":     "tuition_group_default_amount",
}

// -----------------------------------------
// List (GET /tuition-groups)
// Filters: group (HP|BT|NT|LP|BH), grade, q (code/name search)
// -----------------------------------------
func (h *TuitionGroupHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "code", "asc", helper.DefaultOpts)

	q := h.DB.Model(&groupModel.TuitionGroup{})
	if v := c.Query("group"); v != "" {
		q = q.Where("tuition_group_group = ?", strings.ToUpper(v))
	}
	if v := c.Query("grade"); v != "" {
		q = q.Where("tuition_group_grade = ?", v)
	}
	if v := c.Query("q"); v != "" {
		like := "%" + v + "%"
		q = q.Where("tuition_group_code ILIKE ? OR tuition_group_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(sortableGroupCols, "code")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []groupModel.TuitionGroup
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TuitionGroupResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToTuitionGroupResponse(m, tuition.ParseMonthApply(m.TuitionGroupMonthApply)))
	}
	return helper.JsonList(c, "", resp, helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /tuition-groups/:id)
// -----------------------------------------
func (h *TuitionGroupHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m groupModel.TuitionGroup
	if err := h.DB.First(&m, "tuition_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tuition group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToTuitionGroupResponse(m, tuition.ParseMonthApply(m.TuitionGroupMonthApply)))
}

// -----------------------------------------
// Create (POST /tuition-groups)
// -----------------------------------------
func (h *TuitionGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.TuitionGroupCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// A comma grade list silently matches nobody in the applicability rule;
	// warn at save time so catalog mistakes surface early.
	if strings.Contains(in.TuitionGroupGrade, ",") {
		log.Printf("[WARN] tuition group %s has a multi-grade value %q; the applicability rule will never match it",
			in.TuitionGroupCode, in.TuitionGroupGrade)
	}

	var exists int64
	if err := h.DB.Model(&groupModel.TuitionGroup{}).
		Where("tuition_group_code = ?", strings.TrimSpace(in.TuitionGroupCode)).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "tuition group code already exists")
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "", dto.ToTuitionGroupResponse(m, tuition.ParseMonthApply(m.TuitionGroupMonthApply)))
}

// -----------------------------------------
// Update (PATCH /tuition-groups/:id)
// -----------------------------------------
func (h *TuitionGroupHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.TuitionGroupUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m groupModel.TuitionGroup
	if err := h.DB.First(&m, "tuition_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tuition group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyTuitionGroupUpdate(&m, in)
	if in.TuitionGroupGrade != nil && strings.Contains(*in.TuitionGroupGrade, ",") {
		log.Printf("[WARN] tuition group %s updated with multi-grade value %q; it will never match a student",
			m.TuitionGroupCode, *in.TuitionGroupGrade)
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", dto.ToTuitionGroupResponse(m, tuition.ParseMonthApply(m.TuitionGroupMonthApply)))
}

// -----------------------------------------
// Delete (DELETE /tuition-groups/:id) — soft delete
// -----------------------------------------
func (h *TuitionGroupHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m groupModel.TuitionGroup
	if err := h.DB.First(&m, "tuition_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tuition group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "", dto.ToTuitionGroupResponse(m, nil))
}

// -----------------------------------------
// Applicability probe (GET /tuition-groups/:id/owed?grade=&month=)
// Answers "is this fee owed by that grade in that month".
// -----------------------------------------
func (h *TuitionGroupHandler) OwedProbe(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	grade := c.Query("grade")
	month := helper.NormalizeMonth(c.Query("month"))
	if grade == "" || month == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "grade and month (1-12) are required")
	}

	var m groupModel.TuitionGroup
	if err := h.DB.First(&m, "tuition_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tuition group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	owed := tuition.IsFeeOwed(m, grade, month)
	return helper.JsonOK(c, "", fiber.Map{
		"tuition_group_code": m.TuitionGroupCode,
		"grade":              grade,
		"month":              month,
		"owed":               owed,
		"amount":             m.TuitionGroupDefaultAmount,
	})
}
