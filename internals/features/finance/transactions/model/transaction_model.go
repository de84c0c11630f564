package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — transactions (append-only ledger)
============================================== */

// Transaction is one payment entry. Rows are never edited to fix a balance;
// corrections append an offsetting row with a negative amount.
type Transaction struct {
	// PK
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"transaction_id"`

	// Legacy sequential id, still what invoices comma-join in their
	// transaction_ids column.
	TransactionSeq int64 `gorm:"column:transaction_seq;autoIncrement;uniqueIndex" json:"transaction_seq"`

	// Loose reference to students.student_mshs (not DB-enforced).
	TransactionMSHS string `gorm:"column:transaction_mshs;type:varchar(20);not null;index" json:"transaction_mshs"`

	// Catalog code the payment settles, e.g. "HP06".
	TransactionPaidCode string `gorm:"column:transaction_paid_code;type:varchar(20);not null;index" json:"transaction_paid_code"`

	// Negative for reversal/refund entries.
	TransactionAmountPaid decimal.Decimal `gorm:"column:transaction_amount_paid;type:numeric(14,2);not null" json:"transaction_amount_paid"`

	// Month number stored as a string. Historical rows mix "1"/"01"; always
	// normalize on read, never trust the stored shape.
	TransactionPaymentDate string `gorm:"column:transaction_payment_date;type:varchar(10);not null;index" json:"transaction_payment_date"`

	TransactionInvoiceNo string     `gorm:"column:transaction_invoice_no;type:varchar(40);index" json:"transaction_invoice_no"`
	TransactionInvoiceID *uuid.UUID `gorm:"column:transaction_invoice_id;type:uuid;index" json:"transaction_invoice_id,omitempty"`

	// "YYYY-MM" partition key.
	TransactionYearMonth string `gorm:"column:transaction_year_month;type:varchar(7);not null;index" json:"transaction_year_month"`

	TransactionNote string `gorm:"column:transaction_note;type:text" json:"transaction_note"`

	// Audit
	TransactionCreatedAt time.Time      `gorm:"column:transaction_created_at;type:timestamptz;not null;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt time.Time      `gorm:"column:transaction_updated_at;type:timestamptz;not null;autoUpdateTime" json:"transaction_updated_at"`
	TransactionDeletedAt gorm.DeletedAt `gorm:"column:transaction_deleted_at;type:timestamptz;index" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }

func (m *Transaction) BeforeCreate(tx *gorm.DB) error {
	m.TransactionMSHS = strings.TrimSpace(m.TransactionMSHS)
	m.TransactionPaidCode = strings.TrimSpace(m.TransactionPaidCode)
	m.TransactionPaymentDate = strings.TrimSpace(m.TransactionPaymentDate)
	return nil
}

// IsReversal reports whether the row is an offsetting correction entry.
func (m *Transaction) IsReversal() bool {
	return m.TransactionAmountPaid.IsNegative()
}
