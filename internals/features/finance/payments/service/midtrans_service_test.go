package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func pendingPaymentRows(orderID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_id", "payment_mshs", "payment_month", "payment_year_month",
		"payment_amount", "payment_external_id", "payment_status",
	}).AddRow(uuid.NewString(), "HS001", 9, "2025-09", "1500000", orderID, "pending")
}

// A failed status flip must take the booked ledger rows down with it;
// otherwise the row stays "pending" and the gateway retry books the month a
// second time.
func TestSettlementRollsBackWhenStatusFlipFails(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := "HP-HS001-9-abcd1234"

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(pendingPaymentRows(orderID))
	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_mshs", "student_grade"}).
			AddRow(uuid.NewString(), "HS001", "6"))
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id", "transaction_seq"}).
			AddRow(uuid.NewString(), int64(101)))
	mock.ExpectQuery(`INSERT INTO "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_id"}).
			AddRow(uuid.NewString()))
	mock.ExpectExec(`UPDATE "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payments"`).
		WillReturnError(errors.New("update failed"))
	mock.ExpectRollback()

	err := HandleStatusNotification(db, map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": "settlement",
	})
	if err == nil {
		t.Fatal("HandleStatusNotification must fail when the status flip fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}

func TestSettledNotificationIgnoresGatewayRetry(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := "HP-HS001-9-abcd1234"

	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"payment_id", "payment_mshs", "payment_month", "payment_status",
		}).AddRow(uuid.NewString(), "HS001", 9, "settled"))

	err := HandleStatusNotification(db, map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": "settlement",
	})
	if err != nil {
		t.Fatalf("retry on a settled payment must be a no-op, got %v", err)
	}
	// no write expectations declared: the retry may not touch the ledger
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}

func TestCheckoutYearMonthScopesToCurrentYearByDefault(t *testing.T) {
	now := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	if got := CheckoutYearMonth("", 10, now); got != "2025-10" {
		t.Errorf(`CheckoutYearMonth("", 10) = %q, want "2025-10"`, got)
	}
	if got := CheckoutYearMonth("", 2, now); got != "2025-02" {
		t.Errorf(`CheckoutYearMonth("", 2) = %q, want "2025-02"`, got)
	}
	if got := CheckoutYearMonth("2024-10", 10, now); got != "2024-10" {
		t.Errorf("explicit year_month must win, got %q", got)
	}
}
