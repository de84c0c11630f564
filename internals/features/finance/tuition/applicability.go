// Package tuition holds the monthly obligation / revenue / balance
// calculators. Everything here is a pure function over already-loaded rows;
// persistence stays in the feature controllers and services.
package tuition

import (
	"strings"

	"github.com/shopspring/decimal"

	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	helper "hocphi_backend/internals/helpers"
)

// ParseMonthApply parses the raw month_apply column into integer months.
// Empty or blank input is the empty set — a fee with no month list is never
// owed, it does NOT mean "all months". Unparseable entries are skipped; the
// column is historically inconsistent and must not hard-fail a calculation.
func ParseMonthApply(raw string) []int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if m := helper.NormalizeMonth(p); m != 0 {
			out = append(out, m)
		}
	}
	return out
}

// IsFeeOwed decides whether a catalog entry is owed by a student of the given
// grade in the given month.
//
// Grade comparison is exact string equality. A catalog row whose grade field
// holds a comma list ("6,7,8,9") therefore never matches a single-grade
// student — inherited behavior, kept so results stay consistent with stored
// reports. No proration: a fee is fully owed or not owed.
func IsFeeOwed(group groupModel.TuitionGroup, studentGrade string, month int) bool {
	if group.TuitionGroupGrade != studentGrade {
		return false
	}
	for _, m := range ParseMonthApply(group.TuitionGroupMonthApply) {
		if m == month {
			return true
		}
	}
	return false
}

// FeeLine is one itemized amount in a breakdown (per catalog code).
type FeeLine struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown is an itemized total, serialized into the listing JSON columns.
type Breakdown struct {
	Items []FeeLine       `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// OwedForMonth resolves the fees a student of the given grade owes in the
// given month and itemizes them per catalog entry.
func OwedForMonth(groups []groupModel.TuitionGroup, studentGrade string, month int) Breakdown {
	b := Breakdown{Items: []FeeLine{}, Total: decimal.Zero}
	for _, g := range groups {
		if !IsFeeOwed(g, studentGrade, month) {
			continue
		}
		b.Items = append(b.Items, FeeLine{
			Code:   g.TuitionGroupCode,
			Name:   g.TuitionGroupName,
			Amount: g.TuitionGroupDefaultAmount,
		})
		b.Total = b.Total.Add(g.TuitionGroupDefaultAmount)
	}
	return b
}
