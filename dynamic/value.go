package dynamic

// Value pairs a raw value with the context it was received in. It is created
// per conversion request and never stored by the registry.
type Value struct {
	val interface{}
	ctx interface{}
}

// NewValue creates a value; ctx is opaque to the registry and handed to the
// converter as is.
func NewValue(val interface{}, ctx interface{}) *Value {
	return &Value{val: val, ctx: ctx}
}

// Value returns the raw value
func (v *Value) Value() interface{} { return v.val }

// Context returns the conversion context
func (v *Value) Context() interface{} { return v.ctx }

// To converts the value with the default registry.
func (v *Value) To(name string) (interface{}, error) {
	return defaultRegistry.Convert(v, name)
}
