package tuition

import (
	"sort"

	"github.com/shopspring/decimal"

	txModel "hocphi_backend/internals/features/finance/transactions/model"
	helper "hocphi_backend/internals/helpers"
)

// MonthlyRevenue sums amount_paid over the rows whose normalized payment_date
// equals month. Reversal rows carry negative amounts and net in, so a month's
// revenue can legitimately go negative. Read-only.
func MonthlyRevenue(txs []txModel.Transaction, month int) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if helper.NormalizeMonth(t.TransactionPaymentDate) != month {
			continue
		}
		sum = sum.Add(t.TransactionAmountPaid)
	}
	return sum
}

// RevenueByCode itemizes a month's revenue per paid_code, for the dathu
// column of the monthly listing. Codes are emitted in lexical order so
// rebuilds are deterministic.
func RevenueByCode(txs []txModel.Transaction, month int) Breakdown {
	perCode := map[string]decimal.Decimal{}
	for _, t := range txs {
		if helper.NormalizeMonth(t.TransactionPaymentDate) != month {
			continue
		}
		perCode[t.TransactionPaidCode] = perCode[t.TransactionPaidCode].Add(t.TransactionAmountPaid)
	}

	codes := make([]string, 0, len(perCode))
	for c := range perCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	b := Breakdown{Items: []FeeLine{}, Total: decimal.Zero}
	for _, c := range codes {
		b.Items = append(b.Items, FeeLine{Code: c, Amount: perCode[c]})
		b.Total = b.Total.Add(perCode[c])
	}
	return b
}
