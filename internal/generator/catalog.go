package generator

import "time"

var (
	buildings       = []string{"Palm Tower", "Marina Heights", "Downtown Residence", "Hillside Villa"}
	unitLetters     = []string{"A", "B", "C", "D"}
	apartmentSizes  = []int{500, 750, 1000, 1200, 1500, 2000, 2500}
	apartmentStatus = []string{"Vacant", "Occupied", "Occupied", "Maintenance"}

	ownerIDTypes = []string{"Passport", "Emirates ID", "Driving License"}
	guestIDTypes = []string{"Passport", "Emirates ID"}

	paymentTerms     = []string{"Monthly", "Quarterly", "Bi-annually"}
	brokerCompanies  = []string{"Elite Properties", "Bayut", "Property Finder", "Luxury Homes"}
	paymentMethods   = []string{"Cash", "Cheque", "Bank Transfer"}
	banks            = []string{"Emirates NBD", "Mashreq", "ADCB", "DIB", "RAK Bank"}
	paymentTypes     = []string{"DEWA", "Chiller", "Municipality", "Service Charges", "VAT"}
	paymentStatuses  = []string{"Paid", "Pending", "Overdue"}
	designations     = []string{"Manager", "Supervisor", "Cleaner", "Security", "Maintenance", "Accountant", "Receptionist", "Concierge"}
	furnishingItems  = []string{"Sofa", "Dining Table", "Bed", "Wardrobe", "TV", "Refrigerator", "Washing Machine", "Oven", "Coffee Table", "Curtains"}
	conditions       = []string{"New", "Good", "Fair", "Poor"}
	commonAmenities  = []string{"Swimming Pool", "Gym", "Parking", "Security", "Concierge", "Kids Play Area", "BBQ Area", "Laundry", "Elevator", "Balcony"}
	attributeCatalog = map[string][]string{
		"View":     {"Sea View", "City View", "Garden View", "Pool View", "No View"},
		"Flooring": {"Marble", "Wood", "Tiles", "Carpet"},
		"Layout":   {"Open Plan", "Traditional", "Modern", "Classic"},
	}
)

const (
	contractDays    = 365
	chequeSpacing   = 30
	rentPeriodDays  = 30
	brokerageChance = 0.7
	inactiveChance  = 0.2
	pendingRent     = 0.1
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var (
	contractWindowStart = day(2022, 1, 1)
	contractWindowEnd   = day(2023, 12, 31)
	activeAfter         = day(2023, 6, 1)
	purchaseWindowStart = day(2020, 1, 1)
	joiningWindowStart  = day(2018, 1, 1)
	yearStart           = day(2023, 1, 1)
	yearEnd             = day(2023, 12, 31)
)
