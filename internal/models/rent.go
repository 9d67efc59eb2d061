package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentRecord represents one billing period of a guest's stay
type RentRecord struct {
	RentID      int             `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID int             `gorm:"not null;index"`
	GuestID     int             `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)"`
	PaymentDate time.Time       `gorm:"type:date"`
	PeriodStart time.Time       `gorm:"type:date"`
	PeriodEnd   time.Time       `gorm:"type:date"`
	Status      string
}

func (RentRecord) TableName() string {
	return "rent"
}
