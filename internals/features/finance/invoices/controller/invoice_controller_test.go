package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

func deleteApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewInvoiceHandler(db)
	app.Delete("/invoices/:id", h.Delete)
	return app
}

func TestDeleteRefusesCompletedInvoiceWithoutForce(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_id", "invoice_status", "invoice_transaction_ids"}).
			AddRow(id.String(), "completed", "101,102"))
	mock.ExpectRollback()

	resp, err := deleteApp(db).Test(httptest.NewRequest("DELETE", "/invoices/"+id.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusConflict)
	}
	// rollback must be the only write-side effect
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}

func TestDeleteWithForceRemovesInvoiceAndMembers(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_id", "invoice_status", "invoice_transaction_ids"}).
			AddRow(id.String(), "completed", "101,102"))
	mock.ExpectExec(`UPDATE "transactions" SET "transaction_deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "invoices" SET "invoice_deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := deleteApp(db).Test(httptest.NewRequest("DELETE", "/invoices/"+id.String()+"?force=true", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}
