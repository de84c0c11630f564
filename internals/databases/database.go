package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hocphi_backend/internals/configs"
	invoiceModel "hocphi_backend/internals/features/finance/invoices/model"
	listingModel "hocphi_backend/internals/features/finance/listings/model"
	paymentModel "hocphi_backend/internals/features/finance/payments/model"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
	operatorModel "hocphi_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hocphi&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate keeps the legacy schema reachable from a fresh database. Column
// names are pinned in the model tags so rows written by the old system stay
// readable.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&studentModel.Student{},
		&groupModel.TuitionGroup{},
		&txModel.Transaction{},
		&invoiceModel.Invoice{},
		&listingModel.TuitionMonthlyFeeListing{},
		&paymentModel.Payment{},
		&operatorModel.Operator{},
	); err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
