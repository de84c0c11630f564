package tuition

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
)

func group(code, grade, monthApply string, amount int64) groupModel.TuitionGroup {
	return groupModel.TuitionGroup{
		TuitionGroupCode:          code,
		TuitionGroupName:          code,
		TuitionGroupGrade:         grade,
		TuitionGroupMonthApply:    monthApply,
		TuitionGroupDefaultAmount: decimal.NewFromInt(amount),
	}
}

func TestParseMonthApply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"empty is never, not all", "", nil},
		{"blank is never", "   ", nil},
		{"single value", "9", []int{9}},
		{"zero padded single", "09", []int{9}},
		{"comma list", "9,10,11,12,1,2,3,4,5", []int{9, 10, 11, 12, 1, 2, 3, 4, 5}},
		{"spaces and padding", " 09 , 10 ,1", []int{9, 10, 1}},
		{"garbage entries skipped", "9,x,13,0,10", []int{9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMonthApply(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMonthApply(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsFeeOwed(t *testing.T) {
	hp06 := group("HP06", "6", "9,10,11,12,1,2,3,4,5", 3645000)

	tests := []struct {
		name  string
		group groupModel.TuitionGroup
		grade string
		month int
		want  bool
	}{
		{"grade and month match", hp06, "6", 10, true},
		{"summer month not in list", hp06, "6", 7, false},
		{"grade mismatch even with month match", hp06, "7", 10, false},
		{"empty month_apply never applies", group("LP01", "6", "", 500000), "6", 9, false},
		{"zero padded month in catalog", group("BH01", "6", "01", 150000), "6", 1, true},
		// Multi-grade catalog rows never match a single-grade student:
		// exact string equality, inherited from the source system.
		{"comma grade list never matches", group("LP02", "6,7,8,9,10,11,12", "9", 200000), "6", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFeeOwed(tt.group, tt.grade, tt.month); got != tt.want {
				t.Errorf("IsFeeOwed(%s, grade=%s, month=%d) = %v, want %v",
					tt.group.TuitionGroupCode, tt.grade, tt.month, got, tt.want)
			}
		})
	}
}

func TestOwedForMonth(t *testing.T) {
	groups := []groupModel.TuitionGroup{
		group("HP06", "6", "9,10,11,12,1,2,3,4,5", 3645000),
		group("BT06", "6", "9,10,11,12", 900000),
		group("HP07", "7", "9,10,11,12,1,2,3,4,5", 3645000),
		group("LP00", "6", "", 500000), // empty month list, never owed
	}

	b := OwedForMonth(groups, "6", 10)
	if len(b.Items) != 2 {
		t.Fatalf("expected 2 owed lines, got %d (%v)", len(b.Items), b.Items)
	}
	want := decimal.NewFromInt(3645000 + 900000)
	if !b.Total.Equal(want) {
		t.Errorf("owed total = %s, want %s", b.Total, want)
	}

	// January: tuition still applies, day-boarding does not.
	jan := OwedForMonth(groups, "6", 1)
	if len(jan.Items) != 1 || jan.Items[0].Code != "HP06" {
		t.Errorf("january owed lines = %v, want only HP06", jan.Items)
	}
}
