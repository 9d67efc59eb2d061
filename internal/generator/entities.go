package generator

import (
	"fmt"

	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

func (g *Generator) generateApartments() (int, error) {
	for i := 1; i <= g.opts.Apartments; i++ {
		g.ds.Apartments = append(g.ds.Apartments, models.Apartment{
			ApartmentID:  i,
			BuildingName: random.Choice(g.rnd, buildings),
			FloorNumber:  g.rnd.Between(1, 30),
			UnitNumber:   fmt.Sprintf("%d%s", g.rnd.Between(1, 20), random.Choice(g.rnd, unitLetters)),
			SizeSqft:     random.Choice(g.rnd, apartmentSizes),
			YearBuilt:    g.rnd.Between(2010, 2023),
			Status:       random.Choice(g.rnd, apartmentStatus),
		})
	}
	return len(g.ds.Apartments), nil
}

func (g *Generator) generateBrokers() (int, error) {
	for i := 1; i <= g.opts.Brokers; i++ {
		g.ds.Brokers = append(g.ds.Brokers, models.Broker{
			BrokerID:       i,
			Name:           fmt.Sprintf("Broker %d", i),
			Company:        random.Choice(g.rnd, brokerCompanies),
			Email:          fmt.Sprintf("broker%d@example.com", i),
			Phone:          g.rnd.Phone(),
			LicenseNumber:  fmt.Sprintf("RERA-%d", g.rnd.Between(10000, 99999)),
			CommissionRate: money(g.rnd.Uniform(2, 5)),
		})
	}
	return len(g.ds.Brokers), nil
}

func (g *Generator) generateEmployees() (int, error) {
	for i := 1; i <= g.opts.Employees; i++ {
		status := models.EmployeeActive
		if g.rnd.Chance(inactiveChance) {
			status = models.EmployeeInactive
		}
		g.ds.Employees = append(g.ds.Employees, models.Employee{
			EmpID:       i,
			Name:        fmt.Sprintf("Employee %d", i),
			Designation: random.Choice(g.rnd, designations),
			Salary:      money(g.rnd.Uniform(2000, 15000)),
			BankDetails: g.rnd.IBAN(),
			JoiningDate: g.rnd.Date(joiningWindowStart, yearEnd),
			Status:      status,
			Contact:     g.rnd.Phone(),
			VisaInfo:    fmt.Sprintf("Visa %d", g.rnd.Between(100000, 999999)),
		})
	}
	return len(g.ds.Employees), nil
}
