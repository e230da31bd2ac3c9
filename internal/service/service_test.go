package service

import (
	"testing"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema. A
// single pooled connection keeps every statement on the same SQLite handle.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newCheckoutService(t *testing.T, db *gorm.DB) CheckoutService {
	t.Helper()
	return NewCheckoutService(
		repository.NewProductRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewTransactionRepo(db),
		db,
		nil,
	)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func createProduct(t *testing.T, db *gorm.DB, name, price string, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:  name,
		Price: dec(t, price),
		Stock: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, p *model.Product) *model.Product {
	t.Helper()
	var fresh model.Product
	if err := db.First(&fresh, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload product %s: %v", p.Name, err)
	}
	return &fresh
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
