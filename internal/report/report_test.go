package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/generator"
	"github.com/beesaferoot/property-seed/internal/random"
	"github.com/beesaferoot/property-seed/internal/schema"
	"github.com/beesaferoot/property-seed/internal/sink"
)

func payment(typ, status string, amount any) schema.Record {
	return schema.Record{
		{Name: "type", Value: typ},
		{Name: "amount", Value: amount},
		{Name: "status", Value: status},
	}
}

func TestSummarize(t *testing.T) {
	records := []schema.Record{
		payment("DEWA", "Paid", "100.00"),
		payment("VAT", "Pending", 50.5),
		payment("DEWA", "Paid", decimal.RequireFromString("49.50")),
	}

	s, err := Summarize(records, "type")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "200.00", s.Total.StringFixed(2))
	assert.Equal(t, "66.67", s.Average.StringFixed(2))

	require.Len(t, s.ByGroup, 2)
	assert.Equal(t, "DEWA", s.ByGroup[0].Key)
	assert.Equal(t, "149.50", s.ByGroup[0].Total.StringFixed(2))
	assert.Equal(t, 2, s.ByGroup[0].Count)
	assert.Equal(t, "VAT", s.ByGroup[1].Key)

	require.Len(t, s.ByStatus, 2)
	assert.Equal(t, "Paid", s.ByStatus[0].Key)
	assert.Equal(t, 2, s.ByStatus[0].Count)
	assert.Equal(t, "Pending", s.ByStatus[1].Key)
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil, "type")
	require.NoError(t, err)
	assert.True(t, s.Empty())
	assert.True(t, s.Total.IsZero())
}

func TestSummarize_BadInput(t *testing.T) {
	_, err := Summarize([]schema.Record{{{Name: "type", Value: "VAT"}}}, "type")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = Summarize([]schema.Record{payment("VAT", "Paid", "ten")}, "type")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = Summarize([]schema.Record{payment("VAT", "Paid", "10")}, "category")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestFeatures(t *testing.T) {
	records := []schema.Record{
		{{Name: "cost", Value: "1200.50"}, {Name: "condition", Value: "New"}, {Name: "is_chargeable", Value: "True"}},
		{{Name: "cost", Value: 300.0}, {Name: "condition", Value: "Poor"}, {Name: "is_chargeable", Value: false}},
	}

	x, y, err := Features(records, []string{"condition", "is_chargeable"}, "cost")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {0, 0}}, x)
	assert.Equal(t, []float64{1200.5, 300}, y)

	x, y, err = Features(records, []string{"cost"}, "")
	require.NoError(t, err)
	assert.Len(t, x, 2)
	assert.Nil(t, y)
}

func TestFeatures_Errors(t *testing.T) {
	records := []schema.Record{{{Name: "condition", Value: "Broken"}, {Name: "item_name", Value: "Sofa"}}}

	_, _, err := Features(records, []string{"size_sqft"}, "")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "missing column size_sqft")

	_, _, err = Features(records, []string{"condition"}, "")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, _, err = Features(records, []string{"item_name"}, "")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, _, err = Features(records, nil, "")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestWithStayDuration(t *testing.T) {
	guests := []schema.Record{
		{{Name: "guest_id", Value: 1}, {Name: "check_in", Value: "2023-01-01"}, {Name: "check_out", Value: "2023-03-02"}},
		{{Name: "guest_id", Value: 2}, {Name: "check_in", Value: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)}, {Name: "check_out", Value: "2023-07-01"}},
	}

	out, err := WithStayDuration(guests)
	require.NoError(t, err)
	d, _ := out[0].Get(StayDuration)
	assert.Equal(t, 60, d)
	d, _ = out[1].Get(StayDuration)
	assert.Equal(t, 30, d)

	_, ok := guests[0].Get(StayDuration)
	assert.False(t, ok, "input must not be modified")

	x, _, err := Features(out, []string{StayDuration}, "")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{60}, {30}}, x)

	_, err = WithStayDuration([]schema.Record{{{Name: "check_in", Value: "2023-01-01"}}})
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestGeneratedDatasetFeeds(t *testing.T) {
	ds, err := generator.Generate(generator.DefaultOptions(), random.New(3), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	collections, err := sink.Collections(ds)
	require.NoError(t, err)
	byName := map[string][]schema.Record{}
	for _, c := range collections {
		byName[c.Name] = c.Records
	}

	x, _, err := Features(byName["apartments"], []string{"size_sqft", "floor_number", "year_built"}, "")
	require.NoError(t, err)
	assert.Len(t, x, len(ds.Apartments))

	x, y, err := Features(byName["apartment_furnishings"], []string{"condition"}, "cost")
	require.NoError(t, err)
	assert.Len(t, x, len(ds.Furnishings))
	assert.Len(t, y, len(ds.Furnishings))

	guests, err := WithStayDuration(byName["guests"])
	require.NoError(t, err)
	x, _, err = Features(guests, []string{StayDuration}, "")
	require.NoError(t, err)
	for _, row := range x {
		assert.GreaterOrEqual(t, row[0], 30.0)
		assert.LessOrEqual(t, row[0], 365.0)
	}

	s, err := Summarize(byName["payments"], "type")
	require.NoError(t, err)
	assert.Equal(t, len(ds.Payments), s.Count)
}

func TestFeatureTable(t *testing.T) {
	c := FeatureTable("furnishing_features", []string{"condition"}, "cost", [][]float64{{3}, {0}}, []float64{1200.5, 300})
	assert.Equal(t, "furnishing_features", c.Name)
	assert.Equal(t, []string{"condition", "cost"}, c.Columns())
	require.Len(t, c.Records, 2)
	v, _ := c.Records[0].Get("cost")
	assert.Equal(t, "1200.50", schema.FormatValue(v))

	c = FeatureTable("apartment_features", []string{"size_sqft"}, "", nil, nil)
	assert.Equal(t, []string{"size_sqft"}, c.Columns())
	assert.Empty(t, c.Records)
}
