package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"hocphi_backend/internals/features/finance/transactions/dto"
)

func TestBuildReversalNegatesAbsolute(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
	}{
		{"positive input", 500000},
		{"already negative input", -500000},
	}
	want := decimal.NewFromInt(-500000)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := BuildReversal(dto.RevertDTO{
				MSHS:      "20110001",
				Month:     10,
				YearMonth: "2025-10",
				Amount:    decimal.NewFromInt(tt.amount),
				PaidCode:  "HP06",
			})
			if !row.TransactionAmountPaid.Equal(want) {
				t.Errorf("amount = %s, want %s", row.TransactionAmountPaid, want)
			}
			if row.TransactionPaymentDate != "10" {
				t.Errorf("payment_date = %q, want \"10\"", row.TransactionPaymentDate)
			}
			if !strings.Contains(row.TransactionNote, "reversal") {
				t.Errorf("note should document the correction, got %q", row.TransactionNote)
			}
		})
	}
}

func TestBuildReversalDefaultsPaidCode(t *testing.T) {
	row := BuildReversal(dto.RevertDTO{
		MSHS:      "20110001",
		Month:     3,
		YearMonth: "2026-03",
		Amount:    decimal.NewFromInt(100000),
	})
	if row.TransactionPaidCode != "DC" {
		t.Errorf("paid_code = %q, want DC adjustment code", row.TransactionPaidCode)
	}
}

func TestNewInvoiceNo(t *testing.T) {
	no := NewInvoiceNo("2025-10")
	if !strings.HasPrefix(no, "INV-2025-10-") {
		t.Errorf("invoice no %q missing prefix", no)
	}
	if no == NewInvoiceNo("2025-10") {
		t.Error("invoice numbers should not collide")
	}
}

func TestSumBatch(t *testing.T) {
	items := []dto.PaymentItemDTO{
		{PaidCode: "HP06", AmountPaid: decimal.NewFromInt(3645000)},
		{PaidCode: "BT06", AmountPaid: decimal.NewFromInt(900000)},
		{PaidCode: "DC", AmountPaid: decimal.NewFromInt(-45000)},
	}
	if got, want := SumBatch(items), decimal.NewFromInt(4500000); !got.Equal(want) {
		t.Errorf("SumBatch = %s, want %s", got, want)
	}
}
