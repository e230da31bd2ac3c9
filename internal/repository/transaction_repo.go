package repository

import (
	"time"

	"go-pos-ws/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindRecent(limit int) ([]model.Transaction, error)
	FindByDateRange(start, end time.Time) ([]model.Transaction, error)
	SalesSummary(start, end time.Time) (*SalesSummary, error)
}

// SalesSummary aggregates committed transactions for the dashboard
type SalesSummary struct {
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int64           `json:"transaction_count"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Items").Preload("Customer").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) FindRecent(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Items").Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByDateRange(start, end time.Time) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Items").Preload("Customer").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) SalesSummary(start, end time.Time) (*SalesSummary, error) {
	var summary SalesSummary

	err := r.db.Model(&model.Transaction{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&summary.TransactionCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.Transaction{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.Revenue).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
