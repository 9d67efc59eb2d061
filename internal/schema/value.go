package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk layout of every date column.
const DateLayout = "2006-01-02"

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// layouts accepted when reading dates back from CSV or a database driver.
var timeLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// FormatValue renders a scalar the way the CSV sink writes it: dates as
// YYYY-MM-DD, decimals and floats with 2 fractional digits, booleans as
// True/False and nil as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case time.Time:
		return x.Format(DateLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(DateLayout)
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.StringFixed(2)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 2, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// assign converts v, either a CSV string or a database driver value, into
// the type of dst and stores it.
func assign(dst reflect.Value, v any) error {
	if dst.Kind() == reflect.Ptr {
		if isEmpty(v) {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		item := reflect.New(dst.Type().Elem())
		if err := assign(item.Elem(), v); err != nil {
			return err
		}
		dst.Set(item)
		return nil
	}

	switch dst.Type() {
	case timeType:
		t, err := ToTime(v)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(t))
		return nil
	case decimalType:
		d, err := ToDecimal(v)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(d))
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		dst.SetString(FormatValue(v))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := ToInt(v)
		if err != nil {
			return err
		}
		dst.SetInt(n)
	case reflect.Bool:
		b, err := ToBool(v)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", dst.Type())
	}
	return nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []byte:
		return len(x) == 0
	}
	return false
}

// ToTime reads a date. The result is midnight UTC of the value's calendar day.
func ToTime(v any) (time.Time, error) {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return time.Time{}, fmt.Errorf("nil time")
		}
		t = *x
	case []byte:
		return ToTime(string(x))
	case string:
		s := strings.TrimSpace(x)
		parsed := false
		for _, layout := range timeLayouts {
			if p, err := time.Parse(layout, s); err == nil {
				t, parsed = p, true
				break
			}
		}
		if !parsed {
			return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
		}
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to a date", v)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case []byte:
		return ToDecimal(string(x))
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	}
	return decimal.Zero, fmt.Errorf("cannot convert %T to a decimal", v)
}

func ToInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		return int64(x), nil
	case []byte:
		return ToInt(string(x))
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to an integer", v)
}

func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case decimal.Decimal:
		return x.InexactFloat64(), nil
	case []byte:
		return ToFloat(string(x))
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	}
	return 0, fmt.Errorf("cannot convert %T to a number", v)
}

func ToBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64:
		return x != 0, nil
	case int:
		return x != 0, nil
	case []byte:
		return ToBool(string(x))
	case string:
		return strconv.ParseBool(strings.TrimSpace(x))
	}
	return false, fmt.Errorf("cannot convert %T to a boolean", v)
}
