package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/listings/dto"
	"hocphi_backend/internals/features/finance/listings/model"
	"hocphi_backend/internals/features/finance/listings/service"
	helper "hocphi_backend/internals/helpers"
)

type ListingHandler struct {
	DB *gorm.DB
}

func NewListingHandler(db *gorm.DB) *ListingHandler {
	return &ListingHandler{DB: db}
}

var sortableListingCols = map[string]string{
	"year_month": "listing_year_month",
	"mshs":       "listing_mshs",
	"grade":      "listing_grade",
	"updated_at": "listing_updated_at",
}

// -----------------------------------------
// List (GET /listings)
// -----------------------------------------
func (h *ListingHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "year_month", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.TuitionMonthlyFeeListing{})
	if v := c.Query("year_month"); v != "" {
		q = q.Where("listing_year_month = ?", v)
	}
	if v := c.Query("mshs"); v != "" {
		q = q.Where("listing_mshs = ?", v)
	}
	if v := c.Query("grade"); v != "" {
		q = q.Where("listing_grade = ?", v)
	}
	if v := c.Query("class"); v != "" {
		q = q.Where("listing_class = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(sortableListingCols, "year_month")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.TuitionMonthlyFeeListing
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ListingResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToListingResponse(m))
	}
	return helper.JsonList(c, "", resp, helper.BuildMeta(total, p))
}

// -----------------------------------------
// History (GET /listings/:mshs)
// One student's statement across months, oldest first.
// -----------------------------------------
func (h *ListingHandler) History(c *fiber.Ctx) error {
	mshs := c.Params("mshs")

	q := h.DB.Where("listing_mshs = ?", mshs)
	if ym := c.Query("year_month"); ym != "" {
		q = q.Where("listing_year_month = ?", ym)
	}
	var list []model.TuitionMonthlyFeeListing
	if err := q.
		Order("listing_year_month asc").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(list) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "no listings for student")
	}

	resp := make([]dto.ListingResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToListingResponse(m))
	}
	return helper.JsonOK(c, "", resp)
}

// -----------------------------------------
// Rebuild (POST /listings/rebuild?year_month=YYYY-MM)
// -----------------------------------------
func (h *ListingHandler) Rebuild(c *fiber.Ctx) error {
	ym := c.Query("year_month")

	rep, err := service.RebuildMonth(h.DB, ym, c.Query("grade"), c.Query("class"))
	if err != nil {
		if errors.Is(err, service.ErrBadYearMonth) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "listings rebuilt", rep)
}
