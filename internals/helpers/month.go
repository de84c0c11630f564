package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeMonth turns the legacy month indicator ("1", "01", " 9 ") into an
// int in 1..12. Historical rows mix zero-padded and plain values depending on
// the write path, so equality is only safe after both sides go through here.
// Anything unparseable or out of range yields 0, which matches no month.
func NormalizeMonth(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > 12 {
		return 0
	}
	return n
}

// MonthString renders a month the way the legacy write path stores it
// (plain, no zero padding).
func MonthString(month int) string {
	return strconv.Itoa(month)
}

// ValidYearMonth reports whether s is a "YYYY-MM" partition key.
func ValidYearMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// YearMonthOf builds the partition key for a year and month.
func YearMonthOf(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// SplitYearMonth breaks "YYYY-MM" apart. ok is false on malformed input.
func SplitYearMonth(s string) (year, month int, ok bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// PrevYearMonth returns the partition key one calendar month back.
func PrevYearMonth(s string) (string, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, -1, 0).Format("2006-01"), true
}
