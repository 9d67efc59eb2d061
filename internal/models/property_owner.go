package models

import "github.com/shopspring/decimal"

// PropertyOwner represents one owner's share of an apartment
type PropertyOwner struct {
	OwnerID             int    `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID         int    `gorm:"not null;index"`
	Name                string `gorm:"not null"`
	Email               string
	Phone               string
	OwnershipPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	IsPrimary           bool
	IDType              string `gorm:"column:id_type"`
	IDNumber            string `gorm:"column:id_number"`
	BankAccount         string
}

func (PropertyOwner) TableName() string {
	return "property_owners"
}
