package models

// Apartment statuses.
const (
	ApartmentVacant      = "Vacant"
	ApartmentOccupied    = "Occupied"
	ApartmentMaintenance = "Maintenance"
)

// Apartment represents a rentable unit within a building
type Apartment struct {
	ApartmentID  int    `gorm:"primaryKey;autoIncrement:false"`
	BuildingName string `gorm:"not null"`
	FloorNumber  int
	UnitNumber   string
	SizeSqft     int
	YearBuilt    int
	Status       string `gorm:"type:varchar(16);not null"`
}

func (Apartment) TableName() string {
	return "apartments"
}
