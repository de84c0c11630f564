package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hocphi_backend/internals/features/finance/transactions/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestRecordPaymentRollsBackWhenInvoiceWriteFails(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_mshs", "student_grade"}).
			AddRow(uuid.NewString(), "HS001", "6"))
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id", "transaction_seq"}).
			AddRow(uuid.NewString(), int64(101)))
	mock.ExpectQuery(`INSERT INTO "invoices"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, _, err := RecordPayment(db, dto.RecordPaymentDTO{
		MSHS:      "HS001",
		Month:     9,
		YearMonth: "2025-09",
		Items: []dto.PaymentItemDTO{
			{PaidCode: "HP", AmountPaid: decimal.NewFromInt(1500000)},
		},
	})
	if err == nil {
		t.Fatal("RecordPayment must fail when the invoice write fails")
	}
	// the rollback expectation is the point: a failed invoice write may not
	// leave committed transaction rows behind
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}

func TestRecordPaymentRejectsUnknownStudentBeforeWriting(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}))
	mock.ExpectRollback()

	_, _, err := RecordPayment(db, dto.RecordPaymentDTO{
		MSHS:      "GHOST",
		Month:     9,
		YearMonth: "2025-09",
		Items: []dto.PaymentItemDTO{
			{PaidCode: "HP", AmountPaid: decimal.NewFromInt(1500000)},
		},
	})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}
