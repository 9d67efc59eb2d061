package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee statuses.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// Employee represents a member of the building staff
type Employee struct {
	EmpID       int `gorm:"primaryKey;autoIncrement:false"`
	Name        string
	Designation string
	Salary      decimal.Decimal `gorm:"type:decimal(10,2)"`
	BankDetails string
	JoiningDate time.Time `gorm:"type:date"`
	Status      string    `gorm:"type:varchar(16)"`
	Contact     string
	VisaInfo    string
}

func (Employee) TableName() string {
	return "employees"
}

// WPSRecord represents one Wage Protection System salary transfer
type WPSRecord struct {
	WpsID          int             `gorm:"column:wps_id;primaryKey;autoIncrement:false"`
	EmpID          int             `gorm:"not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2)"`
	PaymentDate    time.Time       `gorm:"type:date"`
	Status         string
	TransactionRef string
}

func (WPSRecord) TableName() string {
	return "wps"
}
