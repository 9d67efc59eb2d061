// Package report derives payment metrics and numeric feature slices from
// stored records.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/schema"
)

// Group is one bucket of a grouped metric.
type Group struct {
	Key   string
	Total decimal.Decimal
	Count int
}

// Summary holds the headline payment metrics.
type Summary struct {
	Count    int
	Total    decimal.Decimal
	Average  decimal.Decimal
	ByGroup  []Group
	ByStatus []Group
}

func (s Summary) Empty() bool {
	return s.Count == 0
}

// Summarize totals the amount column of records, overall and per value of
// groupBy, and counts records per status. Groups are sorted by key.
func Summarize(records []schema.Record, groupBy string) (Summary, error) {
	s := Summary{Total: decimal.Zero, Average: decimal.Zero}
	if len(records) == 0 {
		return s, nil
	}

	groups := map[string]*Group{}
	statuses := map[string]*Group{}
	for i, rec := range records {
		raw, ok := rec.Get("amount")
		if !ok {
			return Summary{}, errs.InvalidArgument("report", "row %d has no amount column", i+1)
		}
		amount, err := schema.ToDecimal(raw)
		if err != nil {
			return Summary{}, errs.InvalidArgument("report", "row %d: %v", i+1, err)
		}

		s.Count++
		s.Total = s.Total.Add(amount)

		if groupBy != "" {
			key, ok := rec.Get(groupBy)
			if !ok {
				return Summary{}, errs.InvalidArgument("report", "row %d has no %s column", i+1, groupBy)
			}
			add(groups, schema.FormatValue(key), amount)
		}
		if status, ok := rec.Get("status"); ok {
			add(statuses, schema.FormatValue(status), amount)
		}
	}

	s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
	s.ByGroup = sorted(groups)
	s.ByStatus = sorted(statuses)
	return s, nil
}

func add(groups map[string]*Group, key string, amount decimal.Decimal) {
	g, ok := groups[key]
	if !ok {
		g = &Group{Key: key, Total: decimal.Zero}
		groups[key] = g
	}
	g.Total = g.Total.Add(amount)
	g.Count++
}

func sorted(groups map[string]*Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
