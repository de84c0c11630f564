package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "hocphi_backend/internals/features/school/students/model"
)

/* =========================================================
   CSV import / export — legacy seeding format
========================================================= */

// studentCSVHeader is the legacy seeding layout.
var studentCSVHeader = []string{"mshs", "sur_name", "name", "grade", "class", "stay_in", "discount"}

// ImportReport summarizes one CSV run.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ParseStudentsCSV reads the legacy seeding format into models. Malformed
// rows are reported, not fatal — historical exports are full of stray blank
// lines and half-filled rows.
func ParseStudentsCSV(r io.Reader) ([]studentModel.Student, ImportReport) {
	report := ImportReport{}
	var out []studentModel.Student

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		// header row
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "mshs") {
			continue
		}
		if len(rec) < 4 || strings.TrimSpace(rec[0]) == "" {
			report.Skipped++
			continue
		}

		s := studentModel.Student{
			StudentMSHS:    strings.TrimSpace(rec[0]),
			StudentSurName: strings.TrimSpace(rec[1]),
			StudentName:    strings.TrimSpace(rec[2]),
			StudentGrade:   strings.TrimSpace(rec[3]),
		}
		if len(rec) > 4 {
			s.StudentClass = strings.TrimSpace(rec[4])
		}
		if len(rec) > 5 {
			s.StudentStayIn = parseBoolLoose(rec[5])
		}
		if len(rec) > 6 {
			if n, err := strconv.Atoi(strings.TrimSpace(rec[6])); err == nil {
				s.StudentDiscount = n
			}
		}
		out = append(out, s)
		report.Imported++
	}
	return out, report
}

// ImportStudents upserts parsed rows by MSHS. One statement per batch; a
// re-import of the same file is a no-op update, not a duplicate.
func ImportStudents(db *gorm.DB, students []studentModel.Student) error {
	if len(students) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_mshs"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_sur_name", "student_name", "student_grade",
			"student_class", "student_stay_in", "student_discount",
		}),
	}).Create(&students).Error
}

// WriteStudentsCSV renders students back to the seeding layout.
func WriteStudentsCSV(w io.Writer, students []studentModel.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(studentCSVHeader); err != nil {
		return err
	}
	for _, s := range students {
		rec := []string{
			s.StudentMSHS,
			s.StudentSurName,
			s.StudentName,
			s.StudentGrade,
			s.StudentClass,
			strconv.FormatBool(s.StudentStayIn),
			strconv.Itoa(s.StudentDiscount),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseBoolLoose(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "x", "yes", "y":
		return true
	}
	return false
}
