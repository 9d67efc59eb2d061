// Package generator builds a synthetic property-management dataset whose
// tables reference each other consistently. Generation runs as a plan of
// named stages, one per table, each reading only the tables it declares.
package generator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

// Options sizes the base entity pools.
type Options struct {
	Apartments int `validate:"gt=0"`
	Brokers    int `validate:"gt=0"`
	Employees  int `validate:"gt=0"`
}

func DefaultOptions() Options {
	return Options{Apartments: 50, Brokers: 10, Employees: 20}
}

var validate = validator.New()

func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errs.Wrap(errs.KindInvalidArgument, "options", err)
	}
	return nil
}

// Generator owns one dataset under construction. It is single use.
type Generator struct {
	opts Options
	rnd  *random.Source
	now  time.Time
	ds   *models.Dataset
	plan *Plan
}

// New validates opts and prepares the build plan. A nil source is seeded from
// the wall clock. now decides which cheques have cleared; the zero value
// means time.Now.
func New(opts Options, src *random.Source, now time.Time) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = random.NewFromTime()
	}
	if now.IsZero() {
		now = time.Now()
	}

	g := &Generator{
		opts: opts,
		rnd:  src,
		now:  now,
		ds:   &models.Dataset{},
		plan: NewPlan(),
	}
	if err := g.registerStages(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) registerStages() error {
	stages := []Stage{
		{Name: "apartments", Run: g.generateApartments},
		{Name: "brokers", Run: g.generateBrokers},
		{Name: "employees", Run: g.generateEmployees},
		{Name: "property_owners", Needs: []string{"apartments"}, Run: g.generateOwners},
		{Name: "property_registrations", Needs: []string{"apartments"}, Run: g.generateRegistrations},
		{Name: "apartment_furnishings", Needs: []string{"apartments"}, Run: g.generateFurnishings},
		{Name: "apartment_attributes", Needs: []string{"apartments"}, Run: g.generateAttributes},
		{Name: "apartment_amenities", Needs: []string{"apartments"}, Run: g.generateAmenities},
		{Name: "guests", Needs: []string{"apartments"}, Run: g.generateGuests},
		{Name: "payments", Needs: []string{"apartments"}, Run: g.generatePayments},
		{Name: "brokerage", Needs: []string{"property_registrations", "brokers"}, Run: g.generateBrokerage},
		{Name: "cheques", Needs: []string{"property_registrations", "property_owners"}, Run: g.generateCheques},
		{Name: "wps", Needs: []string{"employees"}, Run: g.generateWPS},
		{Name: "rent", Needs: []string{"guests"}, Run: g.generateRent},
	}
	for _, s := range stages {
		if err := g.plan.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// Plan exposes the build plan so callers can run stages one at a time.
func (g *Generator) Plan() *Plan {
	return g.plan
}

// Dataset returns the tables produced so far.
func (g *Generator) Dataset() *models.Dataset {
	return g.ds
}

// Generate runs every remaining stage and returns the finished dataset.
func (g *Generator) Generate() (*models.Dataset, error) {
	logger := log.GetLogger().WithFields(logrus.Fields{
		"Seed":       g.rnd.Seed(),
		"Apartments": g.opts.Apartments,
		"Brokers":    g.opts.Brokers,
		"Employees":  g.opts.Employees,
	})
	logger.Info("generating dataset")

	if err := g.plan.Run(); err != nil {
		return nil, err
	}

	for _, t := range g.ds.Tables() {
		logger.WithFields(logrus.Fields{"Table": t.Name, "Rows": t.Len()}).Debug("table ready")
	}
	return g.ds, nil
}

// Generate is a shortcut for New followed by Generate.
func Generate(opts Options, src *random.Source, now time.Time) (*models.Dataset, error) {
	g, err := New(opts, src, now)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
