package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApartmentFurnishing represents a furniture or appliance item in an apartment
type ApartmentFurnishing struct {
	ID           int `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID  int `gorm:"not null;index"`
	FurnishingID int
	ItemName     string
	PurchaseDate time.Time       `gorm:"type:date"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2)"`
	Condition    string          `gorm:"type:varchar(8)"`
	ImageURL     string          `gorm:"column:image_url"`
}

func (ApartmentFurnishing) TableName() string {
	return "apartment_furnishings"
}
