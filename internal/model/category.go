package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	// Relasi
	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
