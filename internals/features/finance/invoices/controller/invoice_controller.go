package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/invoices/dto"
	"hocphi_backend/internals/features/finance/invoices/model"
	txDTO "hocphi_backend/internals/features/finance/transactions/dto"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	helper "hocphi_backend/internals/helpers"
)

type InvoiceHandler struct {
	DB *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db}
}

var sortableInvoiceCols = map[string]string{
	"created_at": "invoice_created_at",
	"no":         "invoice_no",
	"mshs":       "invoice_mshs",
	"year_month": "invoice_year_month",
}

// -----------------------------------------
// List (GET /invoices)
// -----------------------------------------
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Invoice{})
	if v := c.Query("mshs"); v != "" {
		q = q.Where("invoice_mshs = ?", v)
	}
	if v := c.Query("year_month"); v != "" {
		q = q.Where("invoice_year_month = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}
	if v := c.Query("no"); v != "" {
		q = q.Where("invoice_no = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(sortableInvoiceCols, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Invoice
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.InvoiceResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToInvoiceResponse(m))
	}
	return helper.JsonList(c, "", resp, helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /invoices/:id)
// Resolves member transaction rows through the stored seq list.
// -----------------------------------------
func (h *InvoiceHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}

	var inv model.Invoice
	if err := h.DB.First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []txModel.Transaction
	if seqs := inv.TransactionSeqs(); len(seqs) > 0 {
		if err := h.DB.
			Where("transaction_seq IN ?", seqs).
			Order("transaction_seq asc").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	txResp := make([]txDTO.TransactionResponse, 0, len(rows))
	for _, m := range rows {
		txResp = append(txResp, txDTO.ToTransactionResponse(m, helper.NormalizeMonth(m.TransactionPaymentDate)))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"invoice":      dto.ToInvoiceResponse(inv),
		"transactions": txResp,
	})
}

// -----------------------------------------
// Delete (DELETE /invoices/:id)
// Completed invoices need ?force=true. Member transaction rows go
// with the invoice in the same database transaction.
// -----------------------------------------
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}
	force := c.Query("force") == "true"

	var removedTx int64
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var inv model.Invoice
		if err := tx.First(&inv, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		if inv.InvoiceStatus == model.InvoiceStatusCompleted && !force {
			return errCompletedProtected
		}
		if seqs := inv.TransactionSeqs(); len(seqs) > 0 {
			res := tx.Where("transaction_seq IN ?", seqs).Delete(&txModel.Transaction{})
			if res.Error != nil {
				return res.Error
			}
			removedTx = res.RowsAffected
		}
		return tx.Delete(&inv).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		case errors.Is(err, errCompletedProtected):
			return helper.JsonError(c, fiber.StatusConflict, "completed invoice, pass force=true to delete")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "invoice deleted", fiber.Map{
		"invoice_id":           id,
		"transactions_removed": removedTx,
	})
}

var errCompletedProtected = errors.New("invoice completed")
