package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

var testNow = day(2024, 1, 1)

func newTestGenerator(t *testing.T, opts Options, seed uint64) *Generator {
	t.Helper()
	g, err := New(opts, random.New(seed), testNow)
	require.NoError(t, err)
	return g
}

func TestNew_RejectsNonPositiveCounts(t *testing.T) {
	cases := []Options{
		{Apartments: 0, Brokers: 10, Employees: 20},
		{Apartments: 5, Brokers: -1, Employees: 20},
		{Apartments: 5, Brokers: 10, Employees: 0},
	}
	for _, opts := range cases {
		_, err := New(opts, random.New(1), testNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
	}
}

func TestGenerate_DefaultOptionsSatisfyInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 2024} {
		ds, err := Generate(DefaultOptions(), random.New(seed), testNow)
		require.NoError(t, err)
		require.NoError(t, Verify(ds), "seed %d", seed)

		assert.Len(t, ds.Apartments, 50)
		assert.Len(t, ds.Brokers, 10)
		assert.Len(t, ds.Employees, 20)
		assert.Len(t, ds.Registrations, 50)
		assert.Len(t, ds.Attributes, 150)
	}
}

func TestGenerate_IsDeterministicForSeedAndClock(t *testing.T) {
	a, err := Generate(DefaultOptions(), random.New(99), testNow)
	require.NoError(t, err)
	b, err := Generate(DefaultOptions(), random.New(99), testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(DefaultOptions(), random.New(100), testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a.Apartments, c.Apartments)
}

func TestGenerate_FiveApartments(t *testing.T) {
	ds, err := Generate(Options{Apartments: 5, Brokers: 2, Employees: 3}, random.New(5), testNow)
	require.NoError(t, err)

	require.Len(t, ds.Apartments, 5)
	for i, apt := range ds.Apartments {
		assert.Equal(t, i+1, apt.ApartmentID)
	}

	owners := map[int][]models.PropertyOwner{}
	for _, o := range ds.Owners {
		owners[o.ApartmentID] = append(owners[o.ApartmentID], o)
	}
	for _, apt := range ds.Apartments {
		list := owners[apt.ApartmentID]
		require.NotEmpty(t, list)
		assert.LessOrEqual(t, len(list), 3)
		total := decimal.Zero
		for _, o := range list {
			total = total.Add(o.OwnershipPercentage)
		}
		assert.Equal(t, "100.00", total.StringFixed(2))
	}

	require.Len(t, ds.Registrations, 5)
	for _, r := range ds.Registrations {
		assert.Equal(t, 365*24*time.Hour, r.ContractEnd.Sub(r.ContractStart))
		if r.ContractStart.After(activeAfter) {
			assert.Equal(t, models.RegistrationActive, r.Status)
		} else {
			assert.Equal(t, models.RegistrationExpired, r.Status)
		}
	}
}

func TestGenerate_WPSOnlyForActiveEmployees(t *testing.T) {
	ds, err := Generate(Options{Apartments: 3, Brokers: 1, Employees: 40}, random.New(11), testNow)
	require.NoError(t, err)

	counts := map[int]int{}
	for _, w := range ds.WPS {
		counts[w.EmpID]++
	}
	for _, e := range ds.Employees {
		if e.Status == models.EmployeeActive {
			assert.GreaterOrEqual(t, counts[e.EmpID], 1)
			assert.LessOrEqual(t, counts[e.EmpID], 12)
		} else {
			assert.Zero(t, counts[e.EmpID])
		}
	}
}

func TestAllocateOwnership(t *testing.T) {
	for n := 1; n <= 3; n++ {
		shares, err := allocateOwnership(n)
		require.NoError(t, err)
		require.Len(t, shares, n)

		total := decimal.Zero
		for _, s := range shares {
			assert.True(t, s.Equal(s.Round(2)), s.String())
			total = total.Add(s)
		}
		assert.True(t, total.Equal(hundred), "n=%d sums to %s", n, total)
	}

	shares, _ := allocateOwnership(3)
	assert.Equal(t, "33.34", shares[0].StringFixed(2))
	assert.Equal(t, "33.33", shares[1].StringFixed(2))

	_, err := allocateOwnership(0)
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
}

func TestChequesFor_AmortizesBalance(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 3)
	start := day(2023, 1, 1)
	reg := models.PropertyRegistration{
		RegistrationID: 1,
		ApartmentID:    1,
		ContractAmount: decimal.NewFromInt(10000),
		AdvancePayment: decimal.NewFromInt(1000),
		ContractStart:  start,
		ContractEnd:    addDays(start, contractDays),
	}
	owners := []models.PropertyOwner{{OwnerID: 4, ApartmentID: 1}}

	cheques, err := g.chequesFor(reg, 5, owners, 1)
	require.NoError(t, err)
	require.Len(t, cheques, 5)

	total := decimal.Zero
	for i, c := range cheques {
		assert.Equal(t, i+1, c.ChequeID)
		assert.Equal(t, "Owner 4", c.AccountName)
		assert.True(t, c.DueDate.Equal(addDays(start, 30*(i+1))))
		assert.True(t, c.Amount.GreaterThanOrEqual(decimal.NewFromInt(1620)), c.Amount.String())
		assert.True(t, c.Amount.LessThanOrEqual(decimal.NewFromInt(1980)), c.Amount.String())
		total = total.Add(c.Amount)
	}
	assert.True(t, total.GreaterThanOrEqual(decimal.NewFromInt(7650)))
	assert.True(t, total.LessThanOrEqual(decimal.NewFromInt(10350)))
}

func TestChequesFor_StatusFollowsClock(t *testing.T) {
	start := day(2023, 11, 15)
	reg := models.PropertyRegistration{
		RegistrationID: 1,
		ApartmentID:    1,
		ContractAmount: decimal.NewFromInt(12000),
		AdvancePayment: decimal.Zero,
		ContractStart:  start,
	}
	owners := []models.PropertyOwner{{OwnerID: 1, ApartmentID: 1}}

	g := newTestGenerator(t, DefaultOptions(), 3)
	cheques, err := g.chequesFor(reg, 4, owners, 1)
	require.NoError(t, err)

	// due 2023-12-15 is before the clock, the rest are after
	assert.Equal(t, models.ChequeCleared, cheques[0].Status)
	require.NotNil(t, cheques[0].DepositDate)
	assert.True(t, cheques[0].DepositDate.Equal(cheques[0].DueDate))
	for _, c := range cheques[1:] {
		assert.Equal(t, models.ChequePending, c.Status)
		assert.Nil(t, c.DepositDate)
	}
}

func TestChequesFor_Failures(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 3)
	reg := models.PropertyRegistration{RegistrationID: 1, ApartmentID: 9, ContractAmount: decimal.NewFromInt(100)}

	_, err := g.chequesFor(reg, 4, nil, 1)
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))

	_, err = g.chequesFor(reg, 0, []models.PropertyOwner{{OwnerID: 1}}, 1)
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
}

func TestTileStay(t *testing.T) {
	checkIn := day(2023, 1, 1)
	checkOut := day(2023, 3, 15)

	periods, err := tileStay(checkIn, checkOut, 30)
	require.NoError(t, err)
	require.Len(t, periods, 3)
	assert.True(t, periods[0].Start.Equal(checkIn))
	assert.True(t, periods[0].End.Equal(day(2023, 1, 31)))
	assert.True(t, periods[1].Start.Equal(periods[0].End))
	assert.True(t, periods[2].End.Equal(checkOut))

	periods, err = tileStay(checkIn, checkIn, 30)
	require.NoError(t, err)
	assert.Empty(t, periods)

	_, err = tileStay(checkOut, checkIn, 30)
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
}

func TestGuests_SkipNonOccupiedApartments(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 8)
	g.ds.Apartments = []models.Apartment{
		{ApartmentID: 1, Status: models.ApartmentVacant},
		{ApartmentID: 2, Status: models.ApartmentMaintenance},
	}

	n, err := g.generateGuests()
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = g.generateRent()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRent_OccupiedWithoutGuestsFails(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 8)
	g.ds.Apartments = []models.Apartment{{ApartmentID: 1, Status: models.ApartmentOccupied}}

	_, err := g.generateRent()
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
}

func TestStages_EmptyUpstreamFails(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 8)

	for name, run := range map[string]func() (int, error){
		"owners":        g.generateOwners,
		"registrations": g.generateRegistrations,
		"furnishings":   g.generateFurnishings,
		"attributes":    g.generateAttributes,
		"amenities":     g.generateAmenities,
		"guests":        g.generateGuests,
		"payments":      g.generatePayments,
		"cheques":       g.generateCheques,
		"brokerage":     g.generateBrokerage,
		"wps":           g.generateWPS,
	} {
		_, err := run()
		assert.True(t, errors.Is(err, errs.ErrDataIntegrity), "%s: %v", name, err)
	}
}

func TestBrokerage_NeedsRegistrations(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(), 8)
	_, err := g.generateBrokers()
	require.NoError(t, err)

	_, err = g.generateBrokerage()
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
	assert.Contains(t, err.Error(), "no registrations")
	assert.Empty(t, g.Dataset().Brokerage)
}
