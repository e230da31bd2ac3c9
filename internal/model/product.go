package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty" validate:"-"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Barcode     string          `gorm:"type:varchar(255);index" json:"barcode,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Image       string          `gorm:"type:varchar(500)" json:"image,omitempty"`
}
