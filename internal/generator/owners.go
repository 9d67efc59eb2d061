package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

var hundred = decimal.NewFromInt(100)

// allocateOwnership splits 100 into n shares of two decimal places. The first
// share belongs to the primary owner and absorbs the rounding remainder, so
// the shares always sum to exactly 100.00.
func allocateOwnership(n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, errs.DataIntegrity("property_owners", "cannot split ownership across %d owners", n)
	}
	share := hundred.Div(decimal.NewFromInt(int64(n))).Round(2)
	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = share
	}
	shares[0] = hundred.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))
	return shares, nil
}

func (g *Generator) generateOwners() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("property_owners", "no apartments to own")
	}
	for _, apt := range g.ds.Apartments {
		shares, err := allocateOwnership(g.rnd.Between(1, 3))
		if err != nil {
			return 0, err
		}
		for n, share := range shares {
			id := len(g.ds.Owners) + 1
			g.ds.Owners = append(g.ds.Owners, models.PropertyOwner{
				OwnerID:             id,
				ApartmentID:         apt.ApartmentID,
				Name:                fmt.Sprintf("Owner %d", id),
				Email:               fmt.Sprintf("owner%d@example.com", id),
				Phone:               g.rnd.Phone(),
				OwnershipPercentage: share,
				IsPrimary:           n == 0,
				IDType:              random.Choice(g.rnd, ownerIDTypes),
				IDNumber:            fmt.Sprintf("%d", g.rnd.Between(1000000, 9999999)),
				BankAccount:         g.rnd.IBAN(),
			})
		}
	}
	return len(g.ds.Owners), nil
}
