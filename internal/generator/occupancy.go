package generator

import (
	"fmt"
	"time"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

// Only occupied apartments get a guest. Vacant and maintenance units are
// skipped without error.
func (g *Generator) generateGuests() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("guests", "no apartments to occupy")
	}
	for _, apt := range g.ds.Apartments {
		if apt.Status != models.ApartmentOccupied {
			continue
		}
		id := len(g.ds.Guests) + 1
		checkIn := g.rnd.Date(yearStart, yearEnd)
		g.ds.Guests = append(g.ds.Guests, models.Guest{
			GuestID:       id,
			ApartmentID:   apt.ApartmentID,
			Name:          fmt.Sprintf("Guest %d", id),
			Email:         fmt.Sprintf("guest%d@example.com", id),
			Phone:         g.rnd.Phone(),
			IDType:        random.Choice(g.rnd, guestIDTypes),
			IDNumber:      fmt.Sprintf("%d", g.rnd.Between(1000000, 9999999)),
			CheckIn:       checkIn,
			CheckOut:      addDays(checkIn, g.rnd.Between(30, 365)),
			DepositAmount: money(g.rnd.Uniform(1000, 5000)),
			Status:        models.GuestActive,
		})
	}
	return len(g.ds.Guests), nil
}

type period struct {
	Start time.Time
	End   time.Time
}

// tileStay cuts [checkIn, checkOut) into consecutive periods of at most
// maxDays. The last period ends exactly at checkOut.
func tileStay(checkIn, checkOut time.Time, maxDays int) ([]period, error) {
	if checkOut.Before(checkIn) {
		return nil, errs.DataIntegrity("rent", "check-out %s is before check-in %s",
			checkOut.Format(time.DateOnly), checkIn.Format(time.DateOnly))
	}
	if maxDays <= 0 {
		return nil, errs.InvalidArgument("rent", "period length must be positive, got %d", maxDays)
	}

	var out []period
	for cursor := checkIn; cursor.Before(checkOut); {
		end := addDays(cursor, maxDays)
		if end.After(checkOut) {
			end = checkOut
		}
		out = append(out, period{Start: cursor, End: end})
		cursor = end
	}
	return out, nil
}

func (g *Generator) generateRent() (int, error) {
	occupied := 0
	for _, apt := range g.ds.Apartments {
		if apt.Status == models.ApartmentOccupied {
			occupied++
		}
	}
	if occupied > 0 && len(g.ds.Guests) == 0 {
		return 0, errs.DataIntegrity("rent", "%d occupied apartments but no guests", occupied)
	}

	for _, guest := range g.ds.Guests {
		periods, err := tileStay(guest.CheckIn, guest.CheckOut, rentPeriodDays)
		if err != nil {
			return 0, err
		}
		for _, p := range periods {
			status := "Paid"
			if g.rnd.Chance(pendingRent) {
				status = "Pending"
			}
			g.ds.Rent = append(g.ds.Rent, models.RentRecord{
				RentID:      len(g.ds.Rent) + 1,
				ApartmentID: guest.ApartmentID,
				GuestID:     guest.GuestID,
				Amount:      money(g.rnd.Uniform(3000, 15000)),
				PaymentDate: addDays(p.Start, g.rnd.Between(0, 5)),
				PeriodStart: p.Start,
				PeriodEnd:   p.End,
				Status:      status,
			})
		}
	}
	return len(g.ds.Rent), nil
}
