package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	txModel "hocphi_backend/internals/features/finance/transactions/model"
)

////////////////////////////////////////////////////////////////////////////////
// TRANSACTIONS — DTO
////////////////////////////////////////////////////////////////////////////////

// One line of a payment batch.
type PaymentItemDTO struct {
	PaidCode   string          `json:"paid_code" validate:"required,max=20"`
	AmountPaid decimal.Decimal `json:"amount_paid" validate:"required"`
}

// RecordPaymentDTO records a batch of payment lines for one student and
// month, producing the transaction rows plus their invoice atomically.
type RecordPaymentDTO struct {
	MSHS           string           `json:"mshs" validate:"required,max=20"`
	Month          int              `json:"month" validate:"required,min=1,max=12"`
	YearMonth      string           `json:"year_month" validate:"required,len=7"`
	InvoiceDetails string           `json:"invoice_details" validate:"omitempty"`
	Items          []PaymentItemDTO `json:"items" validate:"required,min=1,dive"`
}

// RevertDTO appends an offsetting entry; it never touches existing rows.
type RevertDTO struct {
	MSHS      string          `json:"mshs" validate:"required,max=20"`
	Month     int             `json:"month" validate:"required,min=1,max=12"`
	YearMonth string          `json:"year_month" validate:"required,len=7"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	PaidCode  string          `json:"paid_code" validate:"omitempty,max=20"`
}

type TransactionResponse struct {
	TransactionID          uuid.UUID       `json:"transaction_id"`
	TransactionSeq         int64           `json:"transaction_seq"`
	TransactionMSHS        string          `json:"transaction_mshs"`
	TransactionPaidCode    string          `json:"transaction_paid_code"`
	TransactionAmountPaid  decimal.Decimal `json:"transaction_amount_paid"`
	TransactionMonth       int             `json:"transaction_month"`
	TransactionPaymentDate string          `json:"transaction_payment_date"`
	TransactionInvoiceNo   string          `json:"transaction_invoice_no"`
	TransactionYearMonth   string          `json:"transaction_year_month"`
	TransactionNote        string          `json:"transaction_note,omitempty"`
	TransactionCreatedAt   time.Time       `json:"transaction_created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToTransactionResponse(m txModel.Transaction, month int) TransactionResponse {
	return TransactionResponse{
		TransactionID:          m.TransactionID,
		TransactionSeq:         m.TransactionSeq,
		TransactionMSHS:        m.TransactionMSHS,
		TransactionPaidCode:    m.TransactionPaidCode,
		TransactionAmountPaid:  m.TransactionAmountPaid,
		TransactionMonth:       month,
		TransactionPaymentDate: m.TransactionPaymentDate,
		TransactionInvoiceNo:   m.TransactionInvoiceNo,
		TransactionYearMonth:   m.TransactionYearMonth,
		TransactionNote:        m.TransactionNote,
		TransactionCreatedAt:   m.TransactionCreatedAt,
	}
}
