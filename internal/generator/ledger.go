package generator

import (
	"fmt"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

// Utility and service-charge payments, 2 to 6 per apartment.
func (g *Generator) generatePayments() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("payments", "no apartments to bill")
	}
	for _, apt := range g.ds.Apartments {
		for n := g.rnd.Between(2, 6); n > 0; n-- {
			g.ds.Payments = append(g.ds.Payments, models.Payment{
				PaymentID:   len(g.ds.Payments) + 1,
				ApartmentID: apt.ApartmentID,
				Type:        random.Choice(g.rnd, paymentTypes),
				Amount:      money(g.rnd.Uniform(200, 2000)),
				Date:        g.rnd.Date(yearStart, yearEnd),
				Method:      random.Choice(g.rnd, paymentMethods),
				Status:      random.Choice(g.rnd, paymentStatuses),
				Reference:   fmt.Sprintf("INV-%d", g.rnd.Between(10000, 99999)),
			})
		}
	}
	return len(g.ds.Payments), nil
}

// WPS salary transfers. Inactive employees draw no salary.
func (g *Generator) generateWPS() (int, error) {
	if len(g.ds.Employees) == 0 {
		return 0, errs.DataIntegrity("wps", "no employees on payroll")
	}
	for _, emp := range g.ds.Employees {
		if emp.Status != models.EmployeeActive {
			continue
		}
		for n := g.rnd.Between(1, 12); n > 0; n-- {
			g.ds.WPS = append(g.ds.WPS, models.WPSRecord{
				WpsID:          len(g.ds.WPS) + 1,
				EmpID:          emp.EmpID,
				Amount:         emp.Salary,
				PaymentDate:    g.rnd.Date(yearStart, yearEnd),
				Status:         "Paid",
				TransactionRef: fmt.Sprintf("WPS-%d", g.rnd.Between(100000, 999999)),
			})
		}
	}
	return len(g.ds.WPS), nil
}
