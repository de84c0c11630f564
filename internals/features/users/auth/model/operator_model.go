package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — operators (back-office accounts)
============================================== */

type Operator struct {
	// PK
	OperatorID uuid.UUID `gorm:"column:operator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"operator_id"`

	OperatorUsername     string `gorm:"column:operator_username;type:varchar(40);not null;uniqueIndex" json:"operator_username"`
	OperatorPasswordHash string `gorm:"column:operator_password_hash;type:varchar(80);not null" json:"-"`

	// admin | accountant
	OperatorRole string `gorm:"column:operator_role;type:varchar(20);not null;default:'accountant'" json:"operator_role"`

	// Audit
	OperatorCreatedAt time.Time      `gorm:"column:operator_created_at;type:timestamptz;not null;autoCreateTime" json:"operator_created_at"`
	OperatorUpdatedAt time.Time      `gorm:"column:operator_updated_at;type:timestamptz;not null;autoUpdateTime" json:"operator_updated_at"`
	OperatorDeletedAt gorm.DeletedAt `gorm:"column:operator_deleted_at;type:timestamptz;index" json:"-"`
}

func (Operator) TableName() string { return "operators" }

func (m *Operator) BeforeCreate(tx *gorm.DB) error {
	m.OperatorUsername = strings.ToLower(strings.TrimSpace(m.OperatorUsername))
	return nil
}
