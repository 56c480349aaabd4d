package binding

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/fluxor-dynamic/dynamic"
)

const (
	// TypeString names the string converter.
	TypeString = "string"
	// TypeInteger names the integer converter.
	TypeInteger = "integer"
	// TypeDate names the date converter.
	TypeDate = "date"
	// TypeDateTime names the date-time converter.
	TypeDateTime = "date-time"
)

// Provides reports whether New registers a converter for name.
func Provides(name string) bool {
	_, ok := converters()[name]
	return ok
}

func converters() map[string]dynamic.Converter {
	return map[string]dynamic.Converter{
		TypeString:   String,
		TypeInteger:  Integer,
		TypeDate:     Date,
		TypeDateTime: DateTime,
	}
}

// String formats scalars as text and structured values as JSON; nil stays nil.
func String(val interface{}, _ interface{}) (interface{}, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	switch reflect.ValueOf(val).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("failed to format %T: %w", val, err)
		}
		return string(data), nil
	}
	return fmt.Sprint(val), nil
}

// Integer converts like the number converter and truncates the result toward
// zero. Values the number converter passes through are returned unchanged.
func Integer(val interface{}, ctx interface{}) (interface{}, error) {
	out, err := dynamic.Number(val, ctx)
	if err != nil {
		return nil, err
	}
	f, ok := out.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return out, nil
	}
	return math.Trunc(f), nil
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime parses RFC 3339 and common ISO layouts, numbers are Unix
// milliseconds. Falsy values are returned unchanged.
func DateTime(val interface{}, ctx interface{}) (interface{}, error) {
	if !dynamic.Truthy(val) {
		return val, nil
	}
	loc := location(ctx)
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		return *v, nil
	case string:
		text := strings.TrimSpace(v)
		for _, layout := range dateTimeLayouts {
			if ts, err := time.ParseInLocation(layout, text, loc); err == nil {
				return ts, nil
			}
		}
		return nil, fmt.Errorf("invalid %s: %q", TypeDateTime, v)
	case bool:
		return nil, fmt.Errorf("invalid %s: %v", TypeDateTime, v)
	}
	out, _ := dynamic.Number(val, ctx)
	if ms, ok := out.(float64); ok && ms >= math.MinInt64 && ms < math.MaxInt64 {
		return time.UnixMilli(int64(ms)).In(loc), nil
	}
	return nil, fmt.Errorf("invalid %s: %v", TypeDateTime, val)
}

// Date behaves like DateTime and truncates the result to midnight.
func Date(val interface{}, ctx interface{}) (interface{}, error) {
	out, err := DateTime(val, ctx)
	if err != nil {
		return nil, err
	}
	ts, ok := out.(time.Time)
	if !ok {
		return out, nil
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()), nil
}
