package service

import (
	"errors"
	"time"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInsufficientStock   = errors.New("insufficient stock remaining")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type CheckoutService interface {
	Checkout(req *model.CheckoutRequest) (*model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
	GetRecentTransactions(limit int) ([]model.Transaction, error)
	GetTransactionsByDateRange(start, end time.Time) ([]model.Transaction, error)
}

type checkoutService struct {
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewCheckoutService(pRepo repository.ProductRepository, cRepo repository.CustomerRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) CheckoutService {
	return &checkoutService{
		productRepo:     pRepo,
		customerRepo:    cRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

// Checkout persists the cart as one transaction inside a single unit of
// work: header insert, denormalized item inserts and stock decrements all
// commit together or not at all. Subtotal, tax and total are stored as the
// caller computed them; this layer does not recompute or correct them.
func (s *checkoutService) Checkout(req *model.CheckoutRequest) (*model.Transaction, error) {
	// 1. Validasi Input
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	transactionID := uuid.New()

	// Resolve the customer leniently: an unknown reference is stored as
	// absent, never a failed sale.
	var customerID *uuid.UUID
	if req.CustomerID != nil {
		_, err := s.customerRepo.FindByID(*req.CustomerID)
		switch {
		case err == nil:
			customerID = req.CustomerID
		case errors.Is(err, gorm.ErrRecordNotFound):
			customerID = nil
		default:
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A. Snapshot each line from the current product row and decrement
		// its stock. A product missing at this point is fatal: there is no
		// row left to decrement against.
		items := make([]model.TransactionItem, 0, len(req.Items))
		for _, line := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			if product.Stock < line.Quantity {
				return ErrInsufficientStock
			}

			// Guarded single-statement decrement; the row lock on this
			// UPDATE is the only serialization point between concurrent
			// checkouts of the same product.
			ok, err := s.productRepo.DecrementStock(tx, product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			items = append(items, model.TransactionItem{
				ID:            uuid.New(),
				TransactionID: transactionID,
				ProductID:     product.ID,
				ProductName:   product.Name,
				ProductPrice:  product.Price,
				Quantity:      line.Quantity,
				Subtotal:      line.Subtotal,
			})
		}

		// B. Insert header + item rows
		transaction := model.Transaction{
			ID:            transactionID,
			CustomerID:    customerID,
			Items:         items,
			Subtotal:      req.Subtotal,
			Tax:           req.Tax,
			Total:         req.Total,
			PaymentMethod: req.PaymentMethod,
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		zap.L().Warn("checkout aborted", zap.String("transaction_id", transactionID.String()), zap.Error(err))
		return nil, err
	}

	// Re-read the committed transaction as confirmation of what was stored
	committed, err := s.transactionRepo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		lines := make([]map[string]interface{}, 0, len(committed.Items))
		for _, item := range committed.Items {
			lines = append(lines, map[string]interface{}{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			})
		}
		s.wsHub.BroadcastEvent(map[string]interface{}{
			"type":           "stock_update",
			"action":         "transaction_committed",
			"transaction_id": committed.ID,
			"total":          committed.Total,
			"items":          lines,
		})
	}

	zap.L().Info("transaction committed",
		zap.String("transaction_id", committed.ID.String()),
		zap.Int("items", len(committed.Items)),
		zap.String("payment_method", string(committed.PaymentMethod)),
	)
	return committed, nil
}

func (s *checkoutService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func (s *checkoutService) GetRecentTransactions(limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.transactionRepo.FindRecent(limit)
}

func (s *checkoutService) GetTransactionsByDateRange(start, end time.Time) ([]model.Transaction, error) {
	return s.transactionRepo.FindByDateRange(start, end)
}
