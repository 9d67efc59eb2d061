package report

import (
	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/schema"
)

// StayDuration is the derived guest column added by WithStayDuration.
const StayDuration = "stay_duration"

// Ordinal codes for furnishing condition, worst first.
var conditionCodes = map[string]float64{
	"Poor": 0,
	"Fair": 1,
	"Good": 2,
	"New":  3,
}

// Features turns records into a numeric matrix of the named feature columns
// and, when target is not empty, a target vector. Booleans encode as 0/1 and
// the condition column as its ordinal code.
func Features(records []schema.Record, features []string, target string) ([][]float64, []float64, error) {
	if len(features) == 0 {
		return nil, nil, errs.InvalidArgument("features", "no feature columns requested")
	}

	x := make([][]float64, 0, len(records))
	var y []float64
	for i, rec := range records {
		row := make([]float64, len(features))
		for j, col := range features {
			v, err := numeric(rec, col)
			if err != nil {
				return nil, nil, errs.InvalidArgument("features", "row %d: %v", i+1, err)
			}
			row[j] = v
		}
		x = append(x, row)

		if target != "" {
			v, err := numeric(rec, target)
			if err != nil {
				return nil, nil, errs.InvalidArgument("features", "row %d: %v", i+1, err)
			}
			y = append(y, v)
		}
	}
	return x, y, nil
}

func numeric(rec schema.Record, col string) (float64, error) {
	v, ok := rec.Get(col)
	if !ok {
		return 0, errs.InvalidArgument("features", "missing column %s", col)
	}
	if col == "condition" {
		code, ok := conditionCodes[schema.FormatValue(v)]
		if !ok {
			return 0, errs.InvalidArgument("features", "unknown condition %q", schema.FormatValue(v))
		}
		return code, nil
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	if s, ok := v.(string); ok && (s == "True" || s == "False") {
		if s == "True" {
			return 1, nil
		}
		return 0, nil
	}
	f, err := schema.ToFloat(v)
	if err != nil {
		return 0, errs.InvalidArgument("features", "column %s: %v", col, err)
	}
	return f, nil
}

// WithStayDuration copies guest records and appends stay_duration, the
// number of nights between check_in and check_out.
func WithStayDuration(guests []schema.Record) ([]schema.Record, error) {
	out := make([]schema.Record, 0, len(guests))
	for i, g := range guests {
		in, ok := g.Get("check_in")
		if !ok {
			return nil, errs.InvalidArgument("features", "guest row %d has no check_in", i+1)
		}
		outDate, ok := g.Get("check_out")
		if !ok {
			return nil, errs.InvalidArgument("features", "guest row %d has no check_out", i+1)
		}
		checkIn, err := schema.ToTime(in)
		if err != nil {
			return nil, errs.InvalidArgument("features", "guest row %d: %v", i+1, err)
		}
		checkOut, err := schema.ToTime(outDate)
		if err != nil {
			return nil, errs.InvalidArgument("features", "guest row %d: %v", i+1, err)
		}

		rec := make(schema.Record, len(g), len(g)+1)
		copy(rec, g)
		rec.Set(StayDuration, int(checkOut.Sub(checkIn).Hours()/24))
		out = append(out, rec)
	}
	return out, nil
}

// FeatureTable lays a feature matrix out as a collection with one column per
// feature, followed by the target column when target is set.
func FeatureTable(name string, features []string, target string, x [][]float64, y []float64) schema.Collection {
	header := append([]string(nil), features...)
	if target != "" {
		header = append(header, target)
	}

	c := schema.Collection{Name: name, Header: header, Records: make([]schema.Record, 0, len(x))}
	for i, row := range x {
		rec := make(schema.Record, 0, len(header))
		for j, col := range features {
			rec = append(rec, schema.Field{Name: col, Value: row[j]})
		}
		if target != "" {
			rec = append(rec, schema.Field{Name: target, Value: y[i]})
		}
		c.Records = append(c.Records, rec)
	}
	return c
}
