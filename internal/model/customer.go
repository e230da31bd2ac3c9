package model

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
}
