package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceDTO "hocphi_backend/internals/features/finance/invoices/dto"
	"hocphi_backend/internals/features/finance/transactions/dto"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	"hocphi_backend/internals/features/finance/transactions/service"
	helper "hocphi_backend/internals/helpers"
)

type TransactionHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db, Validate: validator.New()}
}

var sortableTxCols = map[string]string{
	"created_at": "transaction_created_at",
	"seq":        "transaction_seq",
	"amount":     "transaction_amount_paid",
	"mshs":       "transaction_mshs",
}

// -----------------------------------------
// List (GET /transactions)
// Filters: mshs, year_month, paid_code, month, reversals (true|false)
// -----------------------------------------
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&txModel.Transaction{})
	if v := c.Query("mshs"); v != "" {
		q = q.Where("transaction_mshs = ?", v)
	}
	if v := c.Query("year_month"); v != "" {
		q = q.Where("transaction_year_month = ?", v)
	}
	if v := c.Query("paid_code"); v != "" {
		q = q.Where("transaction_paid_code = ?", v)
	}
	if m := helper.NormalizeMonth(c.Query("month")); m != 0 {
		// month is stored loosely ("1" vs "01"); match both shapes
		q = q.Where("transaction_payment_date IN ?", monthShapes(m))
	}
	if v := c.Query("reversals"); v != "" {
		if v == "true" {
			q = q.Where("transaction_amount_paid < 0")
		} else {
			q = q.Where("transaction_amount_paid >= 0")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(sortableTxCols, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []txModel.Transaction
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TransactionResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToTransactionResponse(m, helper.NormalizeMonth(m.TransactionPaymentDate)))
	}
	return helper.JsonList(c, "", resp, helper.BuildMeta(total, p))
}

// -----------------------------------------
// Record payment batch (POST /transactions)
// Transaction rows + invoice, all-or-nothing.
// -----------------------------------------
func (h *TransactionHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	inv, rows, err := service.RecordPayment(h.DB, in)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	txResp := make([]dto.TransactionResponse, 0, len(rows))
	for _, m := range rows {
		txResp = append(txResp, dto.ToTransactionResponse(m, in.Month))
	}
	return helper.JsonCreated(c, "payment recorded", fiber.Map{
		"invoice":      invoiceDTO.ToInvoiceResponse(*inv),
		"transactions": txResp,
	})
}

// -----------------------------------------
// Revert (POST /transactions/revert)
// Appends an offsetting entry, never mutates history.
// -----------------------------------------
func (h *TransactionHandler) Revert(c *fiber.Ctx) error {
	var in dto.RevertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := service.Revert(h.DB, in)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "reversal recorded", dto.ToTransactionResponse(*row, in.Month))
}

// monthShapes returns the storage variants of a month number ("1" and "01").
func monthShapes(m int) []string {
	plain := helper.MonthString(m)
	padded := plain
	if m < 10 {
		padded = "0" + plain
	}
	if padded == plain {
		return []string{plain}
	}
	return []string{plain, padded}
}
