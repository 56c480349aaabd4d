package dynamic

import (
	"errors"
	"fmt"
)

// ErrAliasCycle is returned when an alias chain leads back to itself.
var ErrAliasCycle = errors.New("alias cycle")

// MissingConverterError is returned when no converter is registered for the
// requested type. It signals a configuration error; retrying will not help.
type MissingConverterError struct {
	Type string
}

func (e *MissingConverterError) Error() string {
	return fmt.Sprintf("no type converter defined for %s", e.Type)
}

// NewMissingConverterError creates a MissingConverterError for the type name.
func NewMissingConverterError(name string) error {
	return &MissingConverterError{Type: name}
}

// IsMissingConverter reports whether err (or any error it wraps) is a
// MissingConverterError.
func IsMissingConverter(err error) bool {
	var target *MissingConverterError
	return errors.As(err, &target)
}
