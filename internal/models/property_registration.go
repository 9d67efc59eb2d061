package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registration statuses.
const (
	RegistrationActive     = "Active"
	RegistrationExpired    = "Expired"
	RegistrationTerminated = "Terminated"
)

// PropertyRegistration represents the Ejari tenancy contract of an apartment
type PropertyRegistration struct {
	RegistrationID   int             `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID      int             `gorm:"not null;uniqueIndex"`
	EgarsiNumber     string          `gorm:"not null"`
	RegistrationDate time.Time       `gorm:"type:date"`
	ContractAmount   decimal.Decimal `gorm:"type:decimal(12,2)"`
	AdvancePayment   decimal.Decimal `gorm:"type:decimal(12,2)"`
	ContractStart    time.Time       `gorm:"type:date"`
	ContractEnd      time.Time       `gorm:"type:date"`
	PaymentTerms     string
	Status           string `gorm:"type:varchar(16)"`
}

func (PropertyRegistration) TableName() string {
	return "property_registrations"
}
