package helper

import "testing"

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1", 1},
		{"01", 1},
		{" 9 ", 9},
		{"12", 12},
		{"0", 0},
		{"13", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
	}
	for _, tt := range tests {
		if got := NormalizeMonth(tt.raw); got != tt.want {
			t.Errorf("NormalizeMonth(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestYearMonthHelpers(t *testing.T) {
	if !ValidYearMonth("2026-08") {
		t.Error("2026-08 should be valid")
	}
	if ValidYearMonth("2026-13") || ValidYearMonth("2026/08") || ValidYearMonth("") {
		t.Error("malformed partition keys accepted")
	}

	if got := YearMonthOf(2026, 8); got != "2026-08" {
		t.Errorf("YearMonthOf = %q", got)
	}

	y, m, ok := SplitYearMonth("2026-01")
	if !ok || y != 2026 || m != 1 {
		t.Errorf("SplitYearMonth = %d, %d, %v", y, m, ok)
	}

	prev, ok := PrevYearMonth("2026-01")
	if !ok || prev != "2025-12" {
		t.Errorf("PrevYearMonth(2026-01) = %q, %v", prev, ok)
	}
	if _, ok := PrevYearMonth("garbage"); ok {
		t.Error("PrevYearMonth should reject malformed input")
	}
}
