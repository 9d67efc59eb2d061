package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
)

type verifier struct {
	problems []error
}

func (v *verifier) fail(format string, args ...any) {
	v.problems = append(v.problems, fmt.Errorf(format, args...))
}

func (v *verifier) sequence(table string, ids []int) {
	for i, id := range ids {
		if id != i+1 {
			v.fail("%s: row %d has id %d, want %d", table, i+1, id, i+1)
			return
		}
	}
}

func (v *verifier) between(what string, n, lo, hi int) {
	if n < lo || n > hi {
		v.fail("%s: %d rows, want %d to %d", what, n, lo, hi)
	}
}

// Verify checks the referential and business invariants of a dataset, either
// freshly generated or read back from storage. All violations are reported
// together in one DataIntegrity error.
func Verify(ds *models.Dataset) error {
	v := &verifier{}

	apartments := make(map[int]models.Apartment, len(ds.Apartments))
	ids := make([]int, 0, len(ds.Apartments))
	for _, a := range ds.Apartments {
		apartments[a.ApartmentID] = a
		ids = append(ids, a.ApartmentID)
	}
	v.sequence("apartments", ids)

	brokers := make(map[int]bool, len(ds.Brokers))
	ids = ids[:0]
	for _, b := range ds.Brokers {
		brokers[b.BrokerID] = true
		ids = append(ids, b.BrokerID)
	}
	v.sequence("brokers", ids)

	employees := make(map[int]models.Employee, len(ds.Employees))
	ids = ids[:0]
	for _, e := range ds.Employees {
		employees[e.EmpID] = e
		ids = append(ids, e.EmpID)
	}
	v.sequence("employees", ids)

	v.owners(ds, apartments)
	registrations := v.registrations(ds, apartments)
	v.attributes(ds, apartments)
	v.amenities(ds, apartments)
	v.furnishings(ds, apartments)
	v.payments(ds, apartments)
	guests := v.guests(ds, apartments)
	v.brokerage(ds, registrations, brokers)
	v.cheques(ds, registrations)
	v.wps(ds, employees)
	v.rent(ds, guests)

	if len(v.problems) == 0 {
		return nil
	}
	return &errs.Error{
		Kind:    errs.KindDataIntegrity,
		Op:      "verify",
		Message: fmt.Sprintf("%d invariant violations", len(v.problems)),
		Err:     errors.Join(v.problems...),
	}
}

func (v *verifier) owners(ds *models.Dataset, apartments map[int]models.Apartment) {
	byApartment := make(map[int][]models.PropertyOwner)
	ids := make([]int, 0, len(ds.Owners))
	for _, o := range ds.Owners {
		ids = append(ids, o.OwnerID)
		if _, ok := apartments[o.ApartmentID]; !ok {
			v.fail("property_owners: owner %d references missing apartment %d", o.OwnerID, o.ApartmentID)
			continue
		}
		byApartment[o.ApartmentID] = append(byApartment[o.ApartmentID], o)
	}
	v.sequence("property_owners", ids)

	for _, a := range ds.Apartments {
		owners := byApartment[a.ApartmentID]
		v.between(fmt.Sprintf("property_owners of apartment %d", a.ApartmentID), len(owners), 1, 3)
		if len(owners) == 0 {
			continue
		}
		total := decimal.Zero
		primaries := 0
		for _, o := range owners {
			total = total.Add(o.OwnershipPercentage)
			if o.IsPrimary {
				primaries++
			}
		}
		if !total.Equal(hundred) {
			v.fail("property_owners: apartment %d ownership sums to %s", a.ApartmentID, total.StringFixed(2))
		}
		if primaries != 1 {
			v.fail("property_owners: apartment %d has %d primary owners", a.ApartmentID, primaries)
		}
	}
}

func (v *verifier) registrations(ds *models.Dataset, apartments map[int]models.Apartment) map[int]models.PropertyRegistration {
	byApartment := make(map[int]models.PropertyRegistration, len(ds.Registrations))
	ids := make([]int, 0, len(ds.Registrations))
	for _, r := range ds.Registrations {
		ids = append(ids, r.RegistrationID)
		if _, ok := apartments[r.ApartmentID]; !ok {
			v.fail("property_registrations: registration %d references missing apartment %d", r.RegistrationID, r.ApartmentID)
			continue
		}
		if _, dup := byApartment[r.ApartmentID]; dup {
			v.fail("property_registrations: apartment %d registered twice", r.ApartmentID)
		}
		byApartment[r.ApartmentID] = r
		if !r.ContractEnd.Equal(addDays(r.ContractStart, contractDays)) {
			v.fail("property_registrations: registration %d spans %s to %s, want %d days",
				r.RegistrationID, r.ContractStart.Format(time.DateOnly), r.ContractEnd.Format(time.DateOnly), contractDays)
		}
	}
	v.sequence("property_registrations", ids)

	for _, a := range ds.Apartments {
		if _, ok := byApartment[a.ApartmentID]; !ok {
			v.fail("property_registrations: apartment %d has no registration", a.ApartmentID)
		}
	}
	return byApartment
}

func (v *verifier) attributes(ds *models.Dataset, apartments map[int]models.Apartment) {
	seen := make(map[int]map[string]int)
	ids := make([]int, 0, len(ds.Attributes))
	for _, at := range ds.Attributes {
		ids = append(ids, at.ID)
		if _, ok := apartments[at.ApartmentID]; !ok {
			v.fail("apartment_attributes: attribute %d references missing apartment %d", at.ID, at.ApartmentID)
			continue
		}
		if seen[at.ApartmentID] == nil {
			seen[at.ApartmentID] = make(map[string]int)
		}
		seen[at.ApartmentID][at.AttributeType]++
	}
	v.sequence("apartment_attributes", ids)

	for _, a := range ds.Apartments {
		for _, kind := range models.AttributeTypes {
			if n := seen[a.ApartmentID][kind]; n != 1 {
				v.fail("apartment_attributes: apartment %d has %d %s attributes", a.ApartmentID, n, kind)
			}
		}
	}
}

func (v *verifier) amenities(ds *models.Dataset, apartments map[int]models.Apartment) {
	names := make(map[int]map[string]bool)
	ids := make([]int, 0, len(ds.Amenities))
	for _, am := range ds.Amenities {
		ids = append(ids, am.ID)
		if _, ok := apartments[am.ApartmentID]; !ok {
			v.fail("apartment_amenities: amenity %d references missing apartment %d", am.ID, am.ApartmentID)
			continue
		}
		if names[am.ApartmentID] == nil {
			names[am.ApartmentID] = make(map[string]bool)
		}
		if names[am.ApartmentID][am.AmenityName] {
			v.fail("apartment_amenities: apartment %d lists %s twice", am.ApartmentID, am.AmenityName)
		}
		names[am.ApartmentID][am.AmenityName] = true
	}
	v.sequence("apartment_amenities", ids)

	for _, a := range ds.Apartments {
		v.between(fmt.Sprintf("apartment_amenities of apartment %d", a.ApartmentID), len(names[a.ApartmentID]), 3, 8)
	}
}

func (v *verifier) furnishings(ds *models.Dataset, apartments map[int]models.Apartment) {
	counts := make(map[int]int)
	ids := make([]int, 0, len(ds.Furnishings))
	for _, f := range ds.Furnishings {
		ids = append(ids, f.ID)
		if _, ok := apartments[f.ApartmentID]; !ok {
			v.fail("apartment_furnishings: item %d references missing apartment %d", f.ID, f.ApartmentID)
			continue
		}
		counts[f.ApartmentID]++
	}
	v.sequence("apartment_furnishings", ids)

	for _, a := range ds.Apartments {
		v.between(fmt.Sprintf("apartment_furnishings of apartment %d", a.ApartmentID), counts[a.ApartmentID], 3, 10)
	}
}

func (v *verifier) payments(ds *models.Dataset, apartments map[int]models.Apartment) {
	ids := make([]int, 0, len(ds.Payments))
	for _, p := range ds.Payments {
		ids = append(ids, p.PaymentID)
		if _, ok := apartments[p.ApartmentID]; !ok {
			v.fail("payments: payment %d references missing apartment %d", p.PaymentID, p.ApartmentID)
		}
	}
	v.sequence("payments", ids)
}

func (v *verifier) guests(ds *models.Dataset, apartments map[int]models.Apartment) map[int]models.Guest {
	byID := make(map[int]models.Guest, len(ds.Guests))
	perApartment := make(map[int]int)
	ids := make([]int, 0, len(ds.Guests))
	for _, g := range ds.Guests {
		ids = append(ids, g.GuestID)
		byID[g.GuestID] = g
		apt, ok := apartments[g.ApartmentID]
		if !ok {
			v.fail("guests: guest %d references missing apartment %d", g.GuestID, g.ApartmentID)
			continue
		}
		if apt.Status != models.ApartmentOccupied {
			v.fail("guests: guest %d stays in %s apartment %d", g.GuestID, apt.Status, apt.ApartmentID)
		}
		if g.CheckOut.Before(g.CheckIn) {
			v.fail("guests: guest %d checks out before checking in", g.GuestID)
		}
		perApartment[g.ApartmentID]++
	}
	v.sequence("guests", ids)

	for _, a := range ds.Apartments {
		if a.Status == models.ApartmentOccupied && perApartment[a.ApartmentID] != 1 {
			v.fail("guests: occupied apartment %d has %d guests, want 1", a.ApartmentID, perApartment[a.ApartmentID])
		}
	}
	return byID
}

func (v *verifier) brokerage(ds *models.Dataset, registrations map[int]models.PropertyRegistration, brokers map[int]bool) {
	ids := make([]int, 0, len(ds.Brokerage))
	seen := make(map[int]bool)
	for _, b := range ds.Brokerage {
		ids = append(ids, b.BrokerageID)
		if _, ok := registrations[b.ApartmentID]; !ok {
			v.fail("brokerage: record %d references apartment %d without a registration", b.BrokerageID, b.ApartmentID)
		}
		if seen[b.ApartmentID] {
			v.fail("brokerage: apartment %d has more than one brokerage record", b.ApartmentID)
		}
		seen[b.ApartmentID] = true
		if !brokers[b.BrokerID] {
			v.fail("brokerage: record %d references missing broker %d", b.BrokerageID, b.BrokerID)
		}
	}
	v.sequence("brokerage", ids)
}

func (v *verifier) cheques(ds *models.Dataset, registrations map[int]models.PropertyRegistration) {
	byApartment := make(map[int][]models.Cheque)
	ids := make([]int, 0, len(ds.Cheques))
	for _, c := range ds.Cheques {
		ids = append(ids, c.ChequeID)
		if _, ok := registrations[c.ApartmentID]; !ok {
			v.fail("cheques: cheque %d references apartment %d without a registration", c.ChequeID, c.ApartmentID)
			continue
		}
		byApartment[c.ApartmentID] = append(byApartment[c.ApartmentID], c)
	}
	v.sequence("cheques", ids)

	for _, r := range ds.Registrations {
		v.between(fmt.Sprintf("cheques of registration %d", r.RegistrationID), len(byApartment[r.ApartmentID]), 4, 12)
	}

	for aptID, cheques := range byApartment {
		reg := registrations[aptID]
		sort.Slice(cheques, func(i, j int) bool { return cheques[i].ChequeID < cheques[j].ChequeID })
		for i, c := range cheques {
			want := addDays(reg.ContractStart, chequeSpacing*(i+1))
			if !c.DueDate.Equal(want) {
				v.fail("cheques: cheque %d due %s, want %s", c.ChequeID,
					c.DueDate.Format(time.DateOnly), want.Format(time.DateOnly))
			}
			if (c.Status == models.ChequeCleared) != (c.DepositDate != nil) {
				v.fail("cheques: cheque %d is %s with deposit date set=%t", c.ChequeID, c.Status, c.DepositDate != nil)
			}
		}
	}
}

func (v *verifier) wps(ds *models.Dataset, employees map[int]models.Employee) {
	counts := make(map[int]int)
	ids := make([]int, 0, len(ds.WPS))
	for _, w := range ds.WPS {
		ids = append(ids, w.WpsID)
		emp, ok := employees[w.EmpID]
		if !ok {
			v.fail("wps: record %d references missing employee %d", w.WpsID, w.EmpID)
			continue
		}
		counts[w.EmpID]++
		if !w.Amount.Equal(emp.Salary) {
			v.fail("wps: record %d pays %s, salary is %s", w.WpsID, w.Amount.StringFixed(2), emp.Salary.StringFixed(2))
		}
	}
	v.sequence("wps", ids)

	for _, e := range ds.Employees {
		switch e.Status {
		case models.EmployeeActive:
			v.between(fmt.Sprintf("wps of employee %d", e.EmpID), counts[e.EmpID], 1, 12)
		default:
			if counts[e.EmpID] > 0 {
				v.fail("wps: %s employee %d has %d salary records", e.Status, e.EmpID, counts[e.EmpID])
			}
		}
	}
}

func (v *verifier) rent(ds *models.Dataset, guests map[int]models.Guest) {
	byGuest := make(map[int][]models.RentRecord)
	ids := make([]int, 0, len(ds.Rent))
	for _, r := range ds.Rent {
		ids = append(ids, r.RentID)
		g, ok := guests[r.GuestID]
		if !ok {
			v.fail("rent: record %d references missing guest %d", r.RentID, r.GuestID)
			continue
		}
		if g.ApartmentID != r.ApartmentID {
			v.fail("rent: record %d bills apartment %d but guest %d stays in %d", r.RentID, r.ApartmentID, g.GuestID, g.ApartmentID)
		}
		byGuest[r.GuestID] = append(byGuest[r.GuestID], r)
	}
	v.sequence("rent", ids)

	for _, g := range ds.Guests {
		records := byGuest[g.GuestID]
		if len(records) == 0 {
			if g.CheckOut.After(g.CheckIn) {
				v.fail("rent: guest %d has no rent records", g.GuestID)
			}
			continue
		}
		sort.Slice(records, func(i, j int) bool { return records[i].RentID < records[j].RentID })
		cursor := g.CheckIn
		for _, r := range records {
			if !r.PeriodStart.Equal(cursor) {
				v.fail("rent: record %d starts %s, want %s", r.RentID,
					r.PeriodStart.Format(time.DateOnly), cursor.Format(time.DateOnly))
			}
			if !r.PeriodEnd.After(r.PeriodStart) || r.PeriodEnd.After(addDays(r.PeriodStart, rentPeriodDays)) {
				v.fail("rent: record %d period %s to %s is not 1 to %d days", r.RentID,
					r.PeriodStart.Format(time.DateOnly), r.PeriodEnd.Format(time.DateOnly), rentPeriodDays)
			}
			cursor = r.PeriodEnd
		}
		if !cursor.Equal(g.CheckOut) {
			v.fail("rent: guest %d billed until %s, checks out %s", g.GuestID,
				cursor.Format(time.DateOnly), g.CheckOut.Format(time.DateOnly))
		}
	}
}
