package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "hocphi_backend/internals/features/school/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type StudentCreateDTO struct {
	StudentMSHS     string `json:"student_mshs" validate:"required,max=20"`
	StudentSurName  string `json:"student_sur_name" validate:"required,max=80"`
	StudentName     string `json:"student_name" validate:"required,max=40"`
	StudentGrade    string `json:"student_grade" validate:"required,max=10"`
	StudentClass    string `json:"student_class" validate:"omitempty,max=20"`
	StudentStayIn   bool   `json:"student_stay_in"`
	StudentDiscount int    `json:"student_discount" validate:"gte=0"`
}

// Update (partial)
type StudentUpdateDTO struct {
	StudentSurName     *string `json:"student_sur_name,omitempty" validate:"omitempty,max=80"`
	StudentName        *string `json:"student_name,omitempty" validate:"omitempty,max=40"`
	StudentGrade       *string `json:"student_grade,omitempty" validate:"omitempty,max=10"`
	StudentClass       *string `json:"student_class,omitempty" validate:"omitempty,max=20"`
	StudentStayIn      *bool   `json:"student_stay_in,omitempty"`
	StudentLeaveSchool *bool   `json:"student_leave_school,omitempty"`
	StudentFailGrade   *bool   `json:"student_fail_grade,omitempty"`
	StudentDiscount    *int    `json:"student_discount,omitempty" validate:"omitempty,gte=0"`
}

type StudentResponse struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentMSHS        string    `json:"student_mshs"`
	StudentSurName     string    `json:"student_sur_name"`
	StudentName        string    `json:"student_name"`
	StudentGrade       string    `json:"student_grade"`
	StudentClass       string    `json:"student_class"`
	StudentStayIn      bool      `json:"student_stay_in"`
	StudentLeaveSchool bool      `json:"student_leave_school"`
	StudentFailGrade   bool      `json:"student_fail_grade"`
	StudentDiscount    int       `json:"student_discount"`
	StudentCreatedAt   time.Time `json:"student_created_at"`
	StudentUpdatedAt   time.Time `json:"student_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (in StudentCreateDTO) ToModel() studentModel.Student {
	return studentModel.Student{
		StudentMSHS:     in.StudentMSHS,
		StudentSurName:  in.StudentSurName,
		StudentName:     in.StudentName,
		StudentGrade:    in.StudentGrade,
		StudentClass:    in.StudentClass,
		StudentStayIn:   in.StudentStayIn,
		StudentDiscount: in.StudentDiscount,
	}
}

func ApplyStudentUpdate(m *studentModel.Student, in StudentUpdateDTO) {
	if in.StudentSurName != nil {
		m.StudentSurName = *in.StudentSurName
	}
	if in.StudentName != nil {
		m.StudentName = *in.StudentName
	}
	if in.StudentGrade != nil {
		m.StudentGrade = *in.StudentGrade
	}
	if in.StudentClass != nil {
		m.StudentClass = *in.StudentClass
	}
	if in.StudentStayIn != nil {
		m.StudentStayIn = *in.StudentStayIn
	}
	if in.StudentLeaveSchool != nil {
		m.StudentLeaveSchool = *in.StudentLeaveSchool
	}
	if in.StudentFailGrade != nil {
		m.StudentFailGrade = *in.StudentFailGrade
	}
	if in.StudentDiscount != nil {
		m.StudentDiscount = *in.StudentDiscount
	}
}

func ToStudentResponse(m studentModel.Student) StudentResponse {
	return StudentResponse{
		StudentID:          m.StudentID,
		StudentMSHS:        m.StudentMSHS,
		StudentSurName:     m.StudentSurName,
		StudentName:        m.StudentName,
		StudentGrade:       m.StudentGrade,
		StudentClass:       m.StudentClass,
		StudentStayIn:      m.StudentStayIn,
		StudentLeaveSchool: m.StudentLeaveSchool,
		StudentFailGrade:   m.StudentFailGrade,
		StudentDiscount:    m.StudentDiscount,
		StudentCreatedAt:   m.StudentCreatedAt,
		StudentUpdatedAt:   m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []studentModel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
