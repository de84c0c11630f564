package service

import (
	"log"
	"strconv"

	"gorm.io/gorm"

	studentModel "hocphi_backend/internals/features/school/students/model"
)

/* =========================================================
   Grade promotion — yearly batch
========================================================= */

// PromotionDecision is the outcome for one student.
type PromotionDecision struct {
	NewGrade    string
	LeaveSchool bool
	Changed     bool
}

// terminalGrade is the last grade taught; finishing it means leaving school.
const terminalGrade = 12

// DecidePromotion applies the yearly rules to one student:
//   - withdrawn / already-left students are untouched
//   - fail_grade students repeat: grade unchanged, flag cleared for next year
//   - terminal-grade students are marked leave_school
//   - everyone else moves up one grade
//
// Non-numeric grades are left alone; the legacy data contains a handful of
// free-form values and the job must not corrupt them.
func DecidePromotion(s studentModel.Student) PromotionDecision {
	if s.StudentLeaveSchool {
		return PromotionDecision{NewGrade: s.StudentGrade}
	}
	if s.StudentFailGrade {
		return PromotionDecision{NewGrade: s.StudentGrade, Changed: true}
	}
	n, err := strconv.Atoi(s.StudentGrade)
	if err != nil {
		return PromotionDecision{NewGrade: s.StudentGrade}
	}
	if n >= terminalGrade {
		return PromotionDecision{NewGrade: s.StudentGrade, LeaveSchool: true, Changed: true}
	}
	return PromotionDecision{NewGrade: strconv.Itoa(n + 1), Changed: true}
}

// PromotionSummary reports what a batch run did.
type PromotionSummary struct {
	Promoted  int `json:"promoted"`
	Repeated  int `json:"repeated"`
	Graduated int `json:"graduated"`
	Skipped   int `json:"skipped"`
}

// PromoteAll runs the yearly promotion over every active student. Sequential
// by design: the batch carries no ordering guarantee beyond processing each
// record once, and each student is committed independently so one bad row
// does not abort the year.
func PromoteAll(db *gorm.DB) (PromotionSummary, error) {
	var sum PromotionSummary

	var students []studentModel.Student
	if err := db.Find(&students).Error; err != nil {
		return sum, err
	}

	for _, s := range students {
		d := DecidePromotion(s)
		if !d.Changed {
			sum.Skipped++
			continue
		}

		updates := map[string]any{
			"student_grade":        d.NewGrade,
			"student_fail_grade":   false,
			"student_leave_school": s.StudentLeaveSchool || d.LeaveSchool,
		}
		if err := db.Model(&studentModel.Student{}).
			Where("student_id = ?", s.StudentID).
			Updates(updates).Error; err != nil {
			log.Printf("[ERROR] promotion failed for mshs=%s: %v", s.StudentMSHS, err)
			sum.Skipped++
			continue
		}

		switch {
		case d.LeaveSchool:
			sum.Graduated++
		case d.NewGrade == s.StudentGrade:
			sum.Repeated++
		default:
			sum.Promoted++
		}
	}
	return sum, nil
}
