package tuition

import (
	"github.com/shopspring/decimal"

	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
)

// NetSurplus is paid minus owed for one month. The sign convention comes from
// the stored reports and is the reverse of the intuitive "debt is positive"
// framing: a positive result means the student paid more than was owed, a
// negative result means money is still owed. Keep it this way — every
// historical duno/dudau value was written with this convention.
func NetSurplus(paid, owed decimal.Decimal) decimal.Decimal {
	return paid.Sub(owed)
}

// CloseMonth chains a month: closing (duno) = opening (dudau) + paid − owed.
// Carry-forward is explicit; callers feed the prior month's closing balance
// as opening. The base calculation never applies it on its own.
func CloseMonth(opening, owed, paid decimal.Decimal) decimal.Decimal {
	return opening.Add(NetSurplus(paid, owed))
}

// MonthBalance bundles one student-month computation.
type MonthBalance struct {
	Month   int             `json:"month"`
	Owed    Breakdown       `json:"owed"`
	Paid    Breakdown       `json:"paid"`
	Surplus decimal.Decimal `json:"surplus"`
}

// BalanceForMonth runs the full chain for one student and month: resolve the
// owed fees, aggregate the paid rows, combine with the report sign convention.
func BalanceForMonth(groups []groupModel.TuitionGroup, txs []txModel.Transaction, studentGrade string, month int) MonthBalance {
	owed := OwedForMonth(groups, studentGrade, month)
	paid := RevenueByCode(txs, month)
	return MonthBalance{
		Month:   month,
		Owed:    owed,
		Paid:    paid,
		Surplus: NetSurplus(paid.Total, owed.Total),
	}
}
