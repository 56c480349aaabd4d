package dynamic

import (
	"math"
	"reflect"
)

const (
	// TypeBoolean names the built-in boolean converter
	TypeBoolean = "boolean"
	// TypeNumber names the built-in number converter
	TypeNumber = "number"
)

func registerBuiltins(r *Registry) {
	r.Register(TypeBoolean, Boolean)
	r.Register(TypeNumber, Number)
}

// Boolean converts val to bool. The strings "false", "undefined", "null", "0"
// and "" are false, any other string is true; numbers are true unless zero;
// everything else follows Truthy.
func Boolean(val interface{}, _ interface{}) (interface{}, error) {
	if text, ok := textual(val); ok {
		switch text {
		case "false", "undefined", "null", "0", "":
			return false, nil
		}
		return true, nil
	}
	if f, ok := numeric(val); ok {
		return f != 0, nil
	}
	return Truthy(val), nil
}

// Number converts val to float64. Numeric zero and falsy values are returned
// unchanged, so nil stays nil and "" stays "". Text that is not a number
// yields NaN.
func Number(val interface{}, _ interface{}) (interface{}, error) {
	if f, ok := numeric(val); ok && f == 0 {
		return val, nil
	}
	if !Truthy(val) {
		return val, nil
	}
	return toNumber(val), nil
}

func toNumber(val interface{}) float64 {
	if f, ok := numeric(val); ok {
		return f
	}
	if text, ok := textual(val); ok {
		return ParseNumber(text)
	}
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Bool {
		if rv.Bool() {
			return 1
		}
		return 0
	}
	return math.NaN()
}
