package service

import (
	"testing"

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

// Withdrawn students keep their listing chain: a historical correction must
// be able to rebuild their final months. Only soft-deleted rows drop out, so
// the student query carries no leave_school filter.
func TestRebuildMonthIncludesWithdrawnStudents(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "tuition_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"tuition_group_id", "tuition_group_code", "tuition_group_name",
			"tuition_group_grade", "tuition_group_month_apply", "tuition_group_default_amount",
		}).AddRow(uuid.NewString(), "HP06", "HP06", "6", "9", "1500000"))
	// anchored: the soft-delete clause must be the whole WHERE
	mock.ExpectQuery(`^SELECT \* FROM "students" WHERE "students"\."student_deleted_at" IS NULL$`).
		WillReturnRows(sqlmock.NewRows([]string{
			"student_id", "student_mshs", "student_grade", "student_class", "student_leave_school",
		}).AddRow(uuid.NewString(), "HS001", "6", "6A", true))
	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id"}))
	mock.ExpectQuery(`SELECT \* FROM "tuition_monthly_fee_listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"listing_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tuition_monthly_fee_listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"listing_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	rep, err := RebuildMonth(db, "2025-09", "", "")
	if err != nil {
		t.Fatalf("RebuildMonth: %v", err)
	}
	if rep.Students != 1 || rep.Upserted != 1 || rep.Failed != 0 {
		t.Errorf("report = %+v, want 1 student upserted", rep)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statement flow: %v", err)
	}
}
