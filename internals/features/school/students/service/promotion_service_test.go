package service

import (
	"testing"

	studentModel "hocphi_backend/internals/features/school/students/model"
)

func TestDecidePromotion(t *testing.T) {
	tests := []struct {
		name        string
		student     studentModel.Student
		wantGrade   string
		wantLeave   bool
		wantChanged bool
	}{
		{
			name:        "regular student moves up",
			student:     studentModel.Student{StudentGrade: "6"},
			wantGrade:   "7",
			wantChanged: true,
		},
		{
			name:        "fail_grade repeats the year",
			student:     studentModel.Student{StudentGrade: "8", StudentFailGrade: true},
			wantGrade:   "8",
			wantChanged: true,
		},
		{
			name:        "terminal grade leaves school",
			student:     studentModel.Student{StudentGrade: "12"},
			wantGrade:   "12",
			wantLeave:   true,
			wantChanged: true,
		},
		{
			name:      "already left is untouched",
			student:   studentModel.Student{StudentGrade: "9", StudentLeaveSchool: true},
			wantGrade: "9",
		},
		{
			name:      "free-form grade is left alone",
			student:   studentModel.Student{StudentGrade: "6A"},
			wantGrade: "6A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecidePromotion(tt.student)
			if d.NewGrade != tt.wantGrade || d.LeaveSchool != tt.wantLeave || d.Changed != tt.wantChanged {
				t.Errorf("DecidePromotion(%+v) = %+v, want grade=%s leave=%v changed=%v",
					tt.student, d, tt.wantGrade, tt.wantLeave, tt.wantChanged)
			}
		})
	}
}
