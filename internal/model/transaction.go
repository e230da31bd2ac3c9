package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentCard    PaymentMethod = "card"
	PaymentDigital PaymentMethod = "digital"
)

// Transaction is a committed sale. Rows are written once inside the checkout
// unit of work and never updated or deleted afterwards.
type Transaction struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer      *Customer         `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      decimal.Decimal   `gorm:"type:decimal(12,3);not null" json:"subtotal"`
	Tax           decimal.Decimal   `gorm:"type:decimal(12,3);not null" json:"tax"`
	Total         decimal.Decimal   `gorm:"type:decimal(12,3);not null" json:"total"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(10);not null" json:"payment_method"`
	CreatedAt     time.Time         `json:"timestamp"`
}

// TransactionItem snapshots the product name and price at commit time so
// later catalog edits do not rewrite historical receipts.
type TransactionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName   string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"product_price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"subtotal"`
}

// CheckoutItem is one cart line in a checkout request. Subtotal arrives
// pre-computed as price * quantity and is stored verbatim.
type CheckoutItem struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CheckoutRequest is the cart payload the terminal sends at payment time.
// Subtotal, tax and total are caller-computed; the commit path trusts them.
type CheckoutRequest struct {
	Items         []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"required,oneof=cash card digital"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
}
