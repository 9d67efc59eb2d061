package models

// ApartmentAmenity represents a building amenity available to an apartment
type ApartmentAmenity struct {
	ID           int `gorm:"primaryKey;autoIncrement:false"`
	ApartmentID  int `gorm:"not null;index"`
	AmenityName  string
	Description  string
	IsChargeable bool
}

func (ApartmentAmenity) TableName() string {
	return "apartment_amenities"
}
