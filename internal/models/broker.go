package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Broker represents a licensed real estate broker
type Broker struct {
	BrokerID      int `gorm:"primaryKey;autoIncrement:false"`
	Name          string
	Company       string
	Email         string
	Phone         string
	LicenseNumber string
	// CommissionRate is a percentage, e.g. 2.50.
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2)"`
}

func (Broker) TableName() string {
	return "brokers"
}

// Brokerage represents the commission paid to a broker for a registration
type Brokerage struct {
	BrokerageID   int             `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID   int             `gorm:"not null;index"`
	BrokerID      int             `gorm:"not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaymentDate   time.Time       `gorm:"type:date"`
	PaymentMethod string
	Status        string
	ReceiptURL    string `gorm:"column:receipt_url"`
}

func (Brokerage) TableName() string {
	return "brokerage"
}
