package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/exports/service"
	listingModel "hocphi_backend/internals/features/finance/listings/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	helper "hocphi_backend/internals/helpers"
)

type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// -----------------------------------------
// Listings workbook (GET /exports/listings.xlsx?year_month=YYYY-MM)
// -----------------------------------------
func (h *ExportHandler) ListingsXLSX(c *fiber.Ctx) error {
	ym := c.Query("year_month")
	if !helper.ValidYearMonth(ym) {
		return helper.JsonError(c, fiber.StatusBadRequest, "year_month must be YYYY-MM")
	}

	var rows []listingModel.TuitionMonthlyFeeListing
	if err := h.DB.
		Where("listing_year_month = ?", ym).
		Order("listing_grade asc, listing_class asc, listing_mshs asc").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	f, err := service.BuildListingWorkbook(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="listings-%s.xlsx"`, ym))
	return c.Send(buf.Bytes())
}

// -----------------------------------------
// Transactions ledger (GET /exports/transactions.csv?year_month=&mshs=)
// -----------------------------------------
func (h *ExportHandler) TransactionsCSV(c *fiber.Ctx) error {
	q := h.DB.Model(&txModel.Transaction{})
	if ym := c.Query("year_month"); ym != "" {
		if !helper.ValidYearMonth(ym) {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_month must be YYYY-MM")
		}
		q = q.Where("transaction_year_month = ?", ym)
	}
	if v := c.Query("mshs"); v != "" {
		q = q.Where("transaction_mshs = ?", v)
	}

	var rows []txModel.Transaction
	if err := q.Order("transaction_seq asc").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out, err := service.WriteTransactionsCSV(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(out)
}
