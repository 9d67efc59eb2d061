package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque statuses.
const (
	ChequePending   = "Pending"
	ChequeCleared   = "Cleared"
	ChequeBounced   = "Bounced"
	ChequeCancelled = "Cancelled"
)

// Cheque represents one post-dated rent cheque of a registration
type Cheque struct {
	ChequeID     int `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID  int `gorm:"not null;index"`
	ChequeNumber string
	BankName     string
	AccountName  string
	Amount       decimal.Decimal `gorm:"type:decimal(12,2)"`
	IssueDate    time.Time       `gorm:"type:date"`
	DueDate      time.Time       `gorm:"type:date"`
	DepositDate  *time.Time      `gorm:"type:date"`
	Status       string          `gorm:"type:varchar(16)"`
	ImageURL     string          `gorm:"column:image_url"`
}

func (Cheque) TableName() string {
	return "cheques"
}
