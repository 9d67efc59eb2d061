package generator

import (
	"fmt"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/models"
	"github.com/beesaferoot/property-seed/internal/random"
)

func (g *Generator) generateFurnishings() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("apartment_furnishings", "no apartments to furnish")
	}
	for _, apt := range g.ds.Apartments {
		for n := g.rnd.Between(3, 10); n > 0; n-- {
			g.ds.Furnishings = append(g.ds.Furnishings, models.ApartmentFurnishing{
				ID:           len(g.ds.Furnishings) + 1,
				ApartmentID:  apt.ApartmentID,
				FurnishingID: g.rnd.Between(1000, 9999),
				ItemName:     random.Choice(g.rnd, furnishingItems),
				PurchaseDate: g.rnd.Date(purchaseWindowStart, yearEnd),
				Cost:         money(g.rnd.Uniform(500, 5000)),
				Condition:    random.Choice(g.rnd, conditions),
				ImageURL:     fmt.Sprintf("https://example.com/furnishings/%s.jpg", g.rnd.String(16)),
			})
		}
	}
	return len(g.ds.Furnishings), nil
}

func (g *Generator) generateAttributes() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("apartment_attributes", "no apartments to describe")
	}
	for _, apt := range g.ds.Apartments {
		for _, kind := range models.AttributeTypes {
			g.ds.Attributes = append(g.ds.Attributes, models.ApartmentAttribute{
				ID:             len(g.ds.Attributes) + 1,
				ApartmentID:    apt.ApartmentID,
				AttributeType:  kind,
				AttributeValue: random.Choice(g.rnd, attributeCatalog[kind]),
			})
		}
	}
	return len(g.ds.Attributes), nil
}

func (g *Generator) generateAmenities() (int, error) {
	if len(g.ds.Apartments) == 0 {
		return 0, errs.DataIntegrity("apartment_amenities", "no apartments to equip")
	}
	for _, apt := range g.ds.Apartments {
		for _, name := range random.Sample(g.rnd, commonAmenities, g.rnd.Between(3, 8)) {
			g.ds.Amenities = append(g.ds.Amenities, models.ApartmentAmenity{
				ID:           len(g.ds.Amenities) + 1,
				ApartmentID:  apt.ApartmentID,
				AmenityName:  name,
				Description:  "Building " + name,
				IsChargeable: g.rnd.Chance(0.5),
			})
		}
	}
	return len(g.ds.Amenities), nil
}
