package tuition

import (
	"testing"

	"github.com/shopspring/decimal"

	txModel "hocphi_backend/internals/features/finance/transactions/model"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
)

func tx(mshs, code, paymentDate string, amount int64) txModel.Transaction {
	return txModel.Transaction{
		TransactionMSHS:        mshs,
		TransactionPaidCode:    code,
		TransactionPaymentDate: paymentDate,
		TransactionAmountPaid:  decimal.NewFromInt(amount),
	}
}

func TestMonthlyRevenue(t *testing.T) {
	txs := []txModel.Transaction{
		tx("20110001", "HP06", "10", 2000000),
		tx("20110001", "BT06", "10", 900000),
		tx("20110001", "HP06", "9", 3645000), // other month
		tx("20110001", "HP06", "x", 1),       // unparseable month matches nothing
	}

	got := MonthlyRevenue(txs, 10)
	if want := decimal.NewFromInt(2900000); !got.Equal(want) {
		t.Errorf("MonthlyRevenue(month=10) = %s, want %s", got, want)
	}
}

func TestMonthlyRevenueNormalizesLegacyMonthStrings(t *testing.T) {
	// CSV importer wrote "01", manual entry wrote "1". Both are January.
	txs := []txModel.Transaction{
		tx("20110001", "HP06", "01", 1000000),
		tx("20110001", "HP06", "1", 500000),
		tx("20110001", "HP06", " 1 ", 250000),
	}
	got := MonthlyRevenue(txs, 1)
	if want := decimal.NewFromInt(1750000); !got.Equal(want) {
		t.Errorf("MonthlyRevenue(month=1) = %s, want %s", got, want)
	}
}

func TestMonthlyRevenueIncludesReversals(t *testing.T) {
	txs := []txModel.Transaction{
		tx("20110001", "HP06", "10", 3645000),
		tx("20110001", "HP06", "10", -3645000),
		tx("20110001", "HP06", "10", -500000),
	}
	got := MonthlyRevenue(txs, 10)
	if want := decimal.NewFromInt(-500000); !got.Equal(want) {
		t.Errorf("revenue with reversals = %s, want %s (negative is valid)", got, want)
	}
}

func TestRevenueByCodeIsDeterministic(t *testing.T) {
	txs := []txModel.Transaction{
		tx("20110001", "HP06", "10", 2000000),
		tx("20110001", "BT06", "10", 900000),
		tx("20110001", "HP06", "10", 1645000),
	}
	b := RevenueByCode(txs, 10)
	if len(b.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(b.Items))
	}
	if b.Items[0].Code != "BT06" || b.Items[1].Code != "HP06" {
		t.Errorf("codes not in lexical order: %v", b.Items)
	}
	if want := decimal.NewFromInt(3645000); !b.Items[1].Amount.Equal(want) {
		t.Errorf("HP06 line = %s, want %s", b.Items[1].Amount, want)
	}
}

func TestNetSurplusSignConvention(t *testing.T) {
	owed := decimal.NewFromInt(3645000)

	// Paid in full: zero.
	if got := NetSurplus(decimal.NewFromInt(3645000), owed); !got.IsZero() {
		t.Errorf("paid in full: surplus = %s, want 0", got)
	}
	// Underpaid: negative means money still owed.
	if got := NetSurplus(decimal.NewFromInt(2000000), owed); !got.Equal(decimal.NewFromInt(-1645000)) {
		t.Errorf("underpaid: surplus = %s, want -1645000", got)
	}
	// Overpaid: positive.
	if got := NetSurplus(decimal.NewFromInt(4000000), owed); !got.Equal(decimal.NewFromInt(355000)) {
		t.Errorf("overpaid: surplus = %s, want 355000", got)
	}
}

func TestCloseMonthChainsOpeningBalance(t *testing.T) {
	opening := decimal.NewFromInt(-1645000) // still owed from last month
	owed := decimal.NewFromInt(3645000)
	paid := decimal.NewFromInt(5290000) // catches up both months

	if got := CloseMonth(opening, owed, paid); !got.IsZero() {
		t.Errorf("CloseMonth = %s, want 0", got)
	}
}

func TestBalanceForMonthWorkedExample(t *testing.T) {
	// TuitionGroup{code HP06, grade 6, months 9..5, amount 3,645,000},
	// student grade 6, month 10.
	catalog := []groupModel.TuitionGroup{group("HP06", "6", "9,10,11,12,1,2,3,4,5", 3645000)}

	full := BalanceForMonth(catalog, []txModel.Transaction{
		tx("20110001", "HP06", "10", 3645000),
	}, "6", 10)
	if !full.Surplus.IsZero() {
		t.Errorf("fully paid month: surplus = %s, want 0", full.Surplus)
	}

	partial := BalanceForMonth(catalog, []txModel.Transaction{
		tx("20110001", "HP06", "10", 2000000),
	}, "6", 10)
	if want := decimal.NewFromInt(-1645000); !partial.Surplus.Equal(want) {
		t.Errorf("partially paid month: surplus = %s, want %s", partial.Surplus, want)
	}
}
