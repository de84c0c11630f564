package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — invoices
============================================== */

type InvoiceStatus string

const (
	InvoiceStatusCompleted InvoiceStatus = "completed"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusVoided    InvoiceStatus = "voided"
)

// Invoice groups the transaction rows recorded in one payment batch. The
// member list is a comma-joined string of transaction seq ids — a legacy
// denormalized join kept so stored rows stay interpretable.
type Invoice struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Human-facing invoice number.
	InvoiceNo string `gorm:"column:invoice_no;type:varchar(40);not null;uniqueIndex" json:"invoice_no"`

	InvoiceMSHS string `gorm:"column:invoice_mshs;type:varchar(20);not null;index" json:"invoice_mshs"`

	// Comma-joined transaction seq list, e.g. "101,102,103".
	InvoiceTransactionIDs string `gorm:"column:invoice_transaction_ids;type:text" json:"invoice_transaction_ids"`

	InvoiceDetails string `gorm:"column:invoice_details;type:text" json:"invoice_details"`

	// Completed invoices are protected from casual deletion.
	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'completed';index" json:"invoice_status"`

	InvoiceYearMonth string `gorm:"column:invoice_year_month;type:varchar(7);not null;index" json:"invoice_year_month"`

	// Audit
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;type:timestamptz;not null;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;type:timestamptz;not null;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;type:timestamptz;index" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }

func (m *Invoice) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(string(m.InvoiceStatus)) == "" {
		m.InvoiceStatus = InvoiceStatusCompleted
	}
	return nil
}

// TransactionSeqs parses the comma-joined member list into ordered ints.
// Blank and malformed entries are skipped, matching how the old reports read
// the column.
func (m *Invoice) TransactionSeqs() []int64 {
	raw := strings.TrimSpace(m.InvoiceTransactionIDs)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// JoinTransactionSeqs serializes seq ids back to the legacy comma-joined form.
func JoinTransactionSeqs(seqs []int64) string {
	parts := make([]string, len(seqs))
	for i, s := range seqs {
		parts[i] = strconv.FormatInt(s, 10)
	}
	return strings.Join(parts, ",")
}
