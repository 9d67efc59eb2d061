package models

// Attribute types. Every apartment carries exactly one value per type.
const (
	AttributeView     = "View"
	AttributeFlooring = "Flooring"
	AttributeLayout   = "Layout"
)

var AttributeTypes = []string{AttributeView, AttributeFlooring, AttributeLayout}

// ApartmentAttribute represents a descriptive feature of an apartment
type ApartmentAttribute struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID    int    `gorm:"not null;uniqueIndex:idx_apartment_attribute"`
	AttributeType  string `gorm:"type:varchar(16);uniqueIndex:idx_apartment_attribute"`
	AttributeValue string
}

func (ApartmentAttribute) TableName() string {
	return "apartment_attributes"
}
