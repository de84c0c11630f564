package service

import (
	"testing"

	"github.com/shopspring/decimal"

	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
)

func snapGroup(code, grade, monthApply string, amount int64) groupModel.TuitionGroup {
	return groupModel.TuitionGroup{
		TuitionGroupCode:          code,
		TuitionGroupName:          code,
		TuitionGroupGrade:         grade,
		TuitionGroupMonthApply:    monthApply,
		TuitionGroupDefaultAmount: decimal.NewFromInt(amount),
	}
}

func snapTx(mshs, code, paymentDate, invoiceNo string, amount int64) txModel.Transaction {
	return txModel.Transaction{
		TransactionMSHS:        mshs,
		TransactionPaidCode:    code,
		TransactionPaymentDate: paymentDate,
		TransactionInvoiceNo:   invoiceNo,
		TransactionAmountPaid:  decimal.NewFromInt(amount),
	}
}

func TestBuildSnapshotChainsOpeningIntoClosing(t *testing.T) {
	st := studentModel.Student{StudentMSHS: "HS001", StudentGrade: "6", StudentClass: "6A"}
	groups := []groupModel.TuitionGroup{
		snapGroup("HP", "6", "9,10,11,12,1,2,3,4,5", 1500000),
		snapGroup("BT", "6", "9,10,11,12,1,2,3,4,5", 500000),
	}
	txs := []txModel.Transaction{
		snapTx("HS001", "HP", "9", "INV-2025-09-aaaa", 1500000),
	}

	row, err := BuildSnapshot(st, groups, txs, "2025-09", decimal.NewFromInt(-200000), []string{"INV-2025-09-aaaa"})
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	if got := ClosingTotal(row.ListingDudau); !got.Equal(decimal.NewFromInt(-200000)) {
		t.Errorf("dudau total = %s, want -200000", got)
	}
	// closing = -200000 + 1500000 - 2000000
	if got := ClosingTotal(row.ListingDuno); !got.Equal(decimal.NewFromInt(-700000)) {
		t.Errorf("duno total = %s, want -700000", got)
	}
	if row.ListingYearMonth != "2025-09" || row.ListingGrade != "6" {
		t.Errorf("snapshot keys = %s/%s", row.ListingYearMonth, row.ListingGrade)
	}
}

func TestBuildSnapshotRejectsBadYearMonth(t *testing.T) {
	st := studentModel.Student{StudentMSHS: "HS001", StudentGrade: "6"}
	if _, err := BuildSnapshot(st, nil, nil, "2025-13", decimal.Zero, nil); err != ErrBadYearMonth {
		t.Errorf("err = %v, want ErrBadYearMonth", err)
	}
}

func TestClosingTotalToleratesMissingColumn(t *testing.T) {
	if got := ClosingTotal(nil); !got.IsZero() {
		t.Errorf("ClosingTotal(nil) = %s, want 0", got)
	}
	if got := ClosingTotal([]byte("not json")); !got.IsZero() {
		t.Errorf("ClosingTotal(garbage) = %s, want 0", got)
	}
}

func TestInvoiceIDsOfDeduplicates(t *testing.T) {
	txs := []txModel.Transaction{
		snapTx("HS001", "HP", "9", "INV-1", 100),
		snapTx("HS001", "BT", "9", "INV-1", 100),
		snapTx("HS001", "HP", "9", "INV-2", 100),
		snapTx("HS001", "HP", "9", "", 100),
	}
	got := invoiceIDsOf(txs)
	if len(got) != 2 || got[0] != "INV-1" || got[1] != "INV-2" {
		t.Errorf("invoiceIDsOf = %v", got)
	}
}
