package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	txModel "hocphi_backend/internals/features/finance/transactions/model"
)

func TestWriteTransactionsCSV(t *testing.T) {
	rows := []txModel.Transaction{
		{
			TransactionSeq:         101,
			TransactionMSHS:        "HS001",
			TransactionPaidCode:    "HP",
			TransactionAmountPaid:  decimal.NewFromInt(1500000),
			TransactionPaymentDate: "9",
			TransactionYearMonth:   "2025-09",
			TransactionInvoiceNo:   "INV-2025-09-aaaa",
		},
		{
			TransactionSeq:        102,
			TransactionMSHS:       "HS001",
			TransactionPaidCode:   "DC",
			TransactionAmountPaid: decimal.NewFromInt(-500000),
			TransactionYearMonth:  "2025-09",
			TransactionNote:       "reversal: balance adjusted by -500000 for month 9",
		},
	}

	out, err := WriteTransactionsCSV(rows)
	if err != nil {
		t.Fatalf("WriteTransactionsCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "seq,mshs,paid_code,amount_paid,payment_date,year_month,invoice_no,note" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "101,HS001,HP,1500000,9,2025-09,") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "-500000") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestBuildListingWorkbookWritesHeader(t *testing.T) {
	f, err := BuildListingWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildListingWorkbook: %v", err)
	}
	got, err := f.GetCellValue(listingSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "MSHS" {
		t.Errorf("A1 = %q, want MSHS", got)
	}
}
