package service

import (
	"bytes"
	"strings"
	"testing"

	studentModel "hocphi_backend/internals/features/school/students/model"
)

func TestParseStudentsCSV(t *testing.T) {
	in := strings.Join([]string{
		"mshs,sur_name,name,grade,class,stay_in,discount",
		"20110001,Nguyen Van,An,6,6A,1,0",
		"20110002,Tran Thi,Binh,6,6A,,10",
		"20110003,Le,Cuong",      // too short
		",Missing,MSHS,6,6A,0,0", // empty mshs
		"20110004,Pham,Dung,7,7B,false,5",
	}, "\n")

	students, report := ParseStudentsCSV(strings.NewReader(in))

	if report.Imported != 3 {
		t.Fatalf("imported = %d, want 3 (report: %+v)", report.Imported, report)
	}
	if report.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", report.Skipped)
	}

	first := students[0]
	if first.StudentMSHS != "20110001" || first.StudentGrade != "6" || !first.StudentStayIn {
		t.Errorf("first row parsed wrong: %+v", first)
	}
	if students[1].StudentDiscount != 10 {
		t.Errorf("discount = %d, want 10", students[1].StudentDiscount)
	}
	if students[2].StudentStayIn {
		t.Errorf("stay_in 'false' should parse as false")
	}
}

func TestWriteStudentsCSVRoundTrip(t *testing.T) {
	in := []studentModel.Student{
		{StudentMSHS: "20110001", StudentSurName: "Nguyen Van", StudentName: "An", StudentGrade: "6", StudentClass: "6A", StudentStayIn: true},
	}
	var buf bytes.Buffer
	if err := WriteStudentsCSV(&buf, in); err != nil {
		t.Fatal(err)
	}

	back, report := ParseStudentsCSV(&buf)
	if report.Imported != 1 {
		t.Fatalf("round trip imported = %d, want 1", report.Imported)
	}
	if back[0].StudentMSHS != "20110001" || !back[0].StudentStayIn {
		t.Errorf("round trip row: %+v", back[0])
	}
}
