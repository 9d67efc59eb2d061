package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Guest statuses.
const (
	GuestActive     = "Active"
	GuestCheckedOut = "Checked-Out"
)

// Guest represents the current occupant of an occupied apartment
type Guest struct {
	GuestID       int `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID   int `gorm:"not null;index"`
	Name          string
	Email         string
	Phone         string
	IDType        string          `gorm:"column:id_type"`
	IDNumber      string          `gorm:"column:id_number"`
	CheckIn       time.Time       `gorm:"type:date"`
	CheckOut      time.Time       `gorm:"type:date"`
	DepositAmount decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status        string
}

func (Guest) TableName() string {
	return "guests"
}
