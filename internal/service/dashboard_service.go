package service

import (
	"time"

	"go-pos-ws/internal/repository"
)

// lowStockThreshold: products below this count surface on the dashboard
const lowStockThreshold = 10

// DashboardSummary is the terminal's overview panel
type DashboardSummary struct {
	Sales         *repository.SalesSummary `json:"sales"`
	ProductCount  int64                    `json:"product_count"`
	LowStockCount int64                    `json:"low_stock_count"`
}

type DashboardService interface {
	GetSummary(start, end time.Time) (*DashboardSummary, error)
}

type dashboardService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
}

func NewDashboardService(tRepo repository.TransactionRepository, pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{
		transactionRepo: tRepo,
		productRepo:     pRepo,
	}
}

func (s *dashboardService) GetSummary(start, end time.Time) (*DashboardSummary, error) {
	sales, err := s.transactionRepo.SalesSummary(start, end)
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Sales:         sales,
		ProductCount:  productCount,
		LowStockCount: lowStock,
	}, nil
}
