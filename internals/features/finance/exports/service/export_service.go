package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	listingModel "hocphi_backend/internals/features/finance/listings/model"
	listingService "hocphi_backend/internals/features/finance/listings/service"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
)

const listingSheet = "Listings"

var listingHeader = []string{
	"MSHS", "Year-Month", "Grade", "Class",
	"Opening (dudau)", "Owed (phaithu)", "Paid (dathu)", "Closing (duno)",
	"Invoices",
}

// BuildListingWorkbook renders one month's listings into an xlsx workbook.
// Only the totals go into the sheet; the itemized JSON stays in the API.
func BuildListingWorkbook(rows []listingModel.TuitionMonthlyFeeListing) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", listingSheet)

	for col, title := range listingHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(listingSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.ListingMSHS,
			r.ListingYearMonth,
			r.ListingGrade,
			r.ListingClass,
			listingService.ClosingTotal(r.ListingDudau).String(),
			listingService.ClosingTotal(r.ListingPhaithu).String(),
			listingService.ClosingTotal(r.ListingDathu).String(),
			listingService.ClosingTotal(r.ListingDuno).String(),
			strings.Join(r.ListingInvoiceIDs, ", "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(listingSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

var transactionCSVHeader = []string{
	"seq", "mshs", "paid_code", "amount_paid", "payment_date", "year_month", "invoice_no", "note",
}

// WriteTransactionsCSV writes transaction rows in the flat ledger format the
// office loads into spreadsheets.
func WriteTransactionsCSV(rows []txModel.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(transactionCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			fmt.Sprintf("%d", r.TransactionSeq),
			r.TransactionMSHS,
			r.TransactionPaidCode,
			r.TransactionAmountPaid.String(),
			r.TransactionPaymentDate,
			r.TransactionYearMonth,
			r.TransactionInvoiceNo,
			r.TransactionNote,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
