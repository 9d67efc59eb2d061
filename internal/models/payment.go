package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a utility or service charge paid for an apartment
type Payment struct {
	PaymentID   int             `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID int             `gorm:"not null;index"`
	Type        string          `gorm:"type:varchar(32)"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)"`
	Date        time.Time       `gorm:"type:date"`
	Method      string
	Status      string
	Reference   string
}

func (Payment) TableName() string {
	return "payments"
}
