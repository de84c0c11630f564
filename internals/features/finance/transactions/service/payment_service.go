package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	invoiceModel "hocphi_backend/internals/features/finance/invoices/model"
	"hocphi_backend/internals/features/finance/transactions/dto"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
	helper "hocphi_backend/internals/helpers"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrEmptyBatch      = errors.New("payment batch has no items")
)

// reversalPaidCode marks correction entries that do not settle a specific
// catalog code ("DC" — dieu chinh, adjustment).
const reversalPaidCode = "DC"

/* =========================================================
   RecordPayment — the atomic write triple
========================================================= */

// RecordPayment writes one payment batch: the transaction rows and their
// invoice, all inside a single DB transaction. Either everything commits or
// nothing does — an orphan transaction row without its invoice must never be
// observable. The student lookup is part of the same transaction; an unknown
// MSHS fails the batch before anything is written.
func RecordPayment(db *gorm.DB, in dto.RecordPaymentDTO) (*invoiceModel.Invoice, []txModel.Transaction, error) {
	if len(in.Items) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	if !helper.ValidYearMonth(in.YearMonth) {
		return nil, nil, fmt.Errorf("invalid year_month %q", in.YearMonth)
	}

	var (
		inv  invoiceModel.Invoice
		rows []txModel.Transaction
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentModel.Student
		if err := tx.First(&student, "student_mshs = ?", strings.TrimSpace(in.MSHS)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		rows = make([]txModel.Transaction, 0, len(in.Items))
		for _, item := range in.Items {
			rows = append(rows, txModel.Transaction{
				TransactionMSHS:        student.StudentMSHS,
				TransactionPaidCode:    item.PaidCode,
				TransactionAmountPaid:  item.AmountPaid,
				TransactionPaymentDate: helper.MonthString(in.Month),
				TransactionYearMonth:   in.YearMonth,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		seqs := make([]int64, len(rows))
		for i, r := range rows {
			seqs[i] = r.TransactionSeq
		}

		inv = invoiceModel.Invoice{
			InvoiceNo:             NewInvoiceNo(in.YearMonth),
			InvoiceMSHS:           student.StudentMSHS,
			InvoiceTransactionIDs: invoiceModel.JoinTransactionSeqs(seqs),
			InvoiceDetails:        in.InvoiceDetails,
			InvoiceStatus:         invoiceModel.InvoiceStatusCompleted,
			InvoiceYearMonth:      in.YearMonth,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		// Back-reference the invoice on each row.
		if err := tx.Model(&txModel.Transaction{}).
			Where("transaction_seq IN ?", seqs).
			Updates(map[string]any{
				"transaction_invoice_no": inv.InvoiceNo,
				"transaction_invoice_id": inv.InvoiceID,
			}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].TransactionInvoiceNo = inv.InvoiceNo
			id := inv.InvoiceID
			rows[i].TransactionInvoiceID = &id
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &inv, rows, nil
}

/* =========================================================
   Revert — append-only correction
========================================================= */

// Revert appends one offsetting transaction with amount_paid = -abs(amount).
// History is never rewritten: the original rows stay untouched and the
// correction nets into every aggregate that reads the month. This is the only
// sanctioned way to fix a wrong balance outside the guarded invoice-deletion
// path.
func Revert(db *gorm.DB, in dto.RevertDTO) (*txModel.Transaction, error) {
	if !helper.ValidYearMonth(in.YearMonth) {
		return nil, fmt.Errorf("invalid year_month %q", in.YearMonth)
	}

	row := BuildReversal(in)
	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentModel.Student
		if err := tx.First(&student, "student_mshs = ?", strings.TrimSpace(in.MSHS)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// BuildReversal derives the offsetting row. Pure; the caller persists it.
func BuildReversal(in dto.RevertDTO) txModel.Transaction {
	amount := in.Amount.Abs().Neg()
	code := strings.TrimSpace(in.PaidCode)
	if code == "" {
		code = reversalPaidCode
	}
	return txModel.Transaction{
		TransactionMSHS:        strings.TrimSpace(in.MSHS),
		TransactionPaidCode:    code,
		TransactionAmountPaid:  amount,
		TransactionPaymentDate: helper.MonthString(in.Month),
		TransactionYearMonth:   in.YearMonth,
		TransactionNote: fmt.Sprintf("reversal: balance adjusted by %s for month %d",
			amount.String(), in.Month),
	}
}

// NewInvoiceNo builds a human-facing invoice number. Uniqueness comes from
// the uuid fragment; the year_month prefix keeps the sequence scannable in
// the ledger book.
func NewInvoiceNo(yearMonth string) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", yearMonth, frag)
}

// SumBatch totals the lines of a batch (used for receipts and the online
// settlement check).
func SumBatch(items []dto.PaymentItemDTO) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.AmountPaid)
	}
	return sum
}
