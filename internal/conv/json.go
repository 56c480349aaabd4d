package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert decodes in into the value pointed to by outPtr.
//
// Values already assignable to the destination are copied directly, anything
// else goes through a JSON marshal/unmarshal round-trip. A nil input leaves the
// destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}
	if in == nil {
		return nil
	}
	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv.Convert: %w", err)
	}
	return json.Unmarshal(data, outPtr)
}
