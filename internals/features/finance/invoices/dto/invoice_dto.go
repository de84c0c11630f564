package dto

import (
	"time"

	"github.com/google/uuid"

	"hocphi_backend/internals/features/finance/invoices/model"
)

/* ==============================================
   RESPONSE DTO
============================================== */

type InvoiceResponse struct {
	InvoiceID             uuid.UUID `json:"invoice_id"`
	InvoiceNo             string    `json:"invoice_no"`
	InvoiceMSHS           string    `json:"invoice_mshs"`
	InvoiceTransactionIDs string    `json:"invoice_transaction_ids"`
	InvoiceTransactionSeq []int64   `json:"invoice_transaction_seqs"`
	InvoiceDetails        string    `json:"invoice_details"`
	InvoiceStatus         string    `json:"invoice_status"`
	InvoiceYearMonth      string    `json:"invoice_year_month"`
	InvoiceCreatedAt      time.Time `json:"invoice_created_at"`
}

func ToInvoiceResponse(m model.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:             m.InvoiceID,
		InvoiceNo:             m.InvoiceNo,
		InvoiceMSHS:           m.InvoiceMSHS,
		InvoiceTransactionIDs: m.InvoiceTransactionIDs,
		InvoiceTransactionSeq: m.TransactionSeqs(),
		InvoiceDetails:        m.InvoiceDetails,
		InvoiceStatus:         string(m.InvoiceStatus),
		InvoiceYearMonth:      m.InvoiceYearMonth,
		InvoiceCreatedAt:      m.InvoiceCreatedAt,
	}
}
