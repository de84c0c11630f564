package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — students
============================================== */

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// External id (MSHS). Transactions reference it as a loose string, the
	// legacy schema never enforced the FK.
	StudentMSHS string `gorm:"column:student_mshs;type:varchar(20);not null;uniqueIndex" json:"student_mshs"`

	StudentSurName string `gorm:"column:student_sur_name;type:varchar(80);not null" json:"student_sur_name"`
	StudentName    string `gorm:"column:student_name;type:varchar(40);not null" json:"student_name"`

	// Mutated yearly by the promotion job.
	StudentGrade string `gorm:"column:student_grade;type:varchar(10);not null;index" json:"student_grade"`
	StudentClass string `gorm:"column:student_class;type:varchar(20);index" json:"student_class"`

	StudentStayIn      bool `gorm:"column:student_stay_in;not null;default:false" json:"student_stay_in"`
	StudentLeaveSchool bool `gorm:"column:student_leave_school;not null;default:false;index" json:"student_leave_school"`
	StudentFailGrade   bool `gorm:"column:student_fail_grade;not null;default:false" json:"student_fail_grade"`

	StudentDiscount int `gorm:"column:student_discount;not null;default:0" json:"student_discount"`

	// Audit. Withdrawal is a soft delete.
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	m.StudentMSHS = strings.TrimSpace(m.StudentMSHS)
	m.StudentGrade = strings.TrimSpace(m.StudentGrade)
	return nil
}

// FullName joins the Vietnamese surname block and given name.
func (m *Student) FullName() string {
	return strings.TrimSpace(m.StudentSurName + " " + m.StudentName)
}
