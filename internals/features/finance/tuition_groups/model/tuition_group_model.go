package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — fee catalog (tuition_groups)
============================================== */

// TuitionGroup is one catalog entry: a fee type, the grade it applies to and
// the months it is owed in. Columns mirror the legacy schema so stored rows
// stay readable.
type TuitionGroup struct {
	// PK
	TuitionGroupID uuid.UUID `gorm:"column:tuition_group_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tuition_group_id"`

	// Unique catalog code, e.g. "HP06"
	TuitionGroupCode string `gorm:"column:tuition_group_code;type:varchar(20);not null;uniqueIndex" json:"tuition_group_code"`
	TuitionGroupName string `gorm:"column:tuition_group_name;type:varchar(120);not null" json:"tuition_group_name"`

	// Category prefix: HP|BT|NT|LP|BH
	TuitionGroupGroup string `gorm:"column:tuition_group_group;type:varchar(10);not null;index" json:"tuition_group_group"`

	// Grade the fee applies to. Exact string match against the student's
	// grade; a comma-joined multi-grade value never matches anyone (legacy
	// behavior, kept for stored-data compatibility).
	TuitionGroupGrade string `gorm:"column:tuition_group_grade;type:varchar(20);not null;index" json:"tuition_group_grade"`

	// Raw comma-joined month list ("9,10,11,12,1,2,3,4,5"). Empty means the
	// fee never applies, NOT "all months".
	TuitionGroupMonthApply string `gorm:"column:tuition_group_month_apply;type:varchar(60)" json:"tuition_group_month_apply"`

	TuitionGroupDefaultAmount decimal.Decimal `gorm:"column:tuition_group_default_amount;type:numeric(14,2);not null" json:"tuition_group_default_amount"`

	// Audit
	TuitionGroupCreatedAt time.Time      `gorm:"column:tuition_group_created_at;type:timestamptz;not null;autoCreateTime" json:"tuition_group_created_at"`
	TuitionGroupUpdatedAt time.Time      `gorm:"column:tuition_group_updated_at;type:timestamptz;not null;autoUpdateTime" json:"tuition_group_updated_at"`
	TuitionGroupDeletedAt gorm.DeletedAt `gorm:"column:tuition_group_deleted_at;type:timestamptz;index" json:"-"`
}

func (TuitionGroup) TableName() string { return "tuition_groups" }

func (m *TuitionGroup) BeforeCreate(tx *gorm.DB) error {
	m.TuitionGroupCode = strings.TrimSpace(m.TuitionGroupCode)
	m.TuitionGroupGrade = strings.TrimSpace(m.TuitionGroupGrade)
	return nil
}

func (m *TuitionGroup) BeforeUpdate(tx *gorm.DB) error {
	m.TuitionGroupCode = strings.TrimSpace(m.TuitionGroupCode)
	m.TuitionGroupGrade = strings.TrimSpace(m.TuitionGroupGrade)
	return nil
}
