package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — payments (online channel)
============================================== */

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSettled PaymentStatus = "settled"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment tracks one snap checkout for a student's outstanding month. The
// ledger entry itself is only written on settlement, through the same atomic
// recording path the cash desk uses.
type Payment struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	PaymentMSHS  string `gorm:"column:payment_mshs;type:varchar(20);not null;index" json:"payment_mshs"`
	PaymentMonth int    `gorm:"column:payment_month;type:smallint;not null" json:"payment_month"`

	// Ledger partition captured at checkout so settlement books into the
	// same YYYY-MM the outstanding amount was computed against.
	PaymentYearMonth string `gorm:"column:payment_year_month;type:varchar(7);index" json:"payment_year_month"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:numeric(14,2);not null" json:"payment_amount"`

	// Gateway OrderID.
	PaymentExternalID string `gorm:"column:payment_external_id;type:varchar(64);not null;uniqueIndex" json:"payment_external_id"`

	PaymentSnapToken   string `gorm:"column:payment_snap_token;type:varchar(128)" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL string `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`

	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentSettledAt *time.Time    `gorm:"column:payment_settled_at" json:"payment_settled_at,omitempty"`

	// Audit
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;not null;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;type:timestamptz;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
