package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — tuition_monthly_fee_listings
============================================== */

// TuitionMonthlyFeeListing is the precomputed per-student-per-month snapshot.
// The four accounting columns keep their Vietnamese legacy names:
// dudau = opening balance, phaithu = amount owed, dathu = amount paid,
// duno = closing balance. Each is a JSON breakdown, not a single number,
// so statements can itemize per fee code.
type TuitionMonthlyFeeListing struct {
	// PK
	ListingID uuid.UUID `gorm:"column:listing_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"listing_id"`

	ListingMSHS      string `gorm:"column:listing_mshs;type:varchar(20);not null;index;uniqueIndex:uniq_listing_mshs_ym,priority:1" json:"listing_mshs"`
	ListingYearMonth string `gorm:"column:listing_year_month;type:varchar(7);not null;index;uniqueIndex:uniq_listing_mshs_ym,priority:2" json:"listing_year_month"`

	// Snapshot of the student's grade/class at rebuild time.
	ListingGrade string `gorm:"column:listing_grade;type:varchar(10);index" json:"listing_grade"`
	ListingClass string `gorm:"column:listing_class;type:varchar(20);index" json:"listing_class"`

	ListingDudau   datatypes.JSON `gorm:"column:listing_dudau;type:jsonb" json:"listing_dudau"`
	ListingPhaithu datatypes.JSON `gorm:"column:listing_phaithu;type:jsonb" json:"listing_phaithu"`
	ListingDathu   datatypes.JSON `gorm:"column:listing_dathu;type:jsonb" json:"listing_dathu"`
	ListingDuno    datatypes.JSON `gorm:"column:listing_duno;type:jsonb" json:"listing_duno"`

	// Invoices that contributed to dathu this month.
	ListingInvoiceIDs pq.StringArray `gorm:"column:listing_invoice_ids;type:text[]" json:"listing_invoice_ids"`

	// Audit
	ListingCreatedAt time.Time      `gorm:"column:listing_created_at;type:timestamptz;not null;autoCreateTime" json:"listing_created_at"`
	ListingUpdatedAt time.Time      `gorm:"column:listing_updated_at;type:timestamptz;not null;autoUpdateTime" json:"listing_updated_at"`
	ListingDeletedAt gorm.DeletedAt `gorm:"column:listing_deleted_at;type:timestamptz;index" json:"-"`
}

func (TuitionMonthlyFeeListing) TableName() string { return "tuition_monthly_fee_listings" }
