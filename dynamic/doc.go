// Package dynamic converts loosely typed runtime values into concrete ones.
//
// A Registry maps type names to Converter functions. Callers wrap a raw value
// together with an opaque context in a Value and ask the registry to convert it
// to a named type:
//
//	v := dynamic.NewValue("false", req)
//	flag, err := v.To("boolean") // false
//
// The default registry is created at package initialisation with the "boolean"
// and "number" converters already registered. Binding layers add their own
// types with Register.
package dynamic
