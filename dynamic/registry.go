package dynamic

import (
	"fmt"

	"github.com/viant/fluxor-dynamic/internal/syncmap"
)

// Converter turns a raw value into a concrete value of one named type. The
// context is collaborator defined; converters may read it but must not modify it.
type Converter func(val interface{}, ctx interface{}) (interface{}, error)

// Registry holds named converters. Registration is additive: registering an
// existing name replaces its converter, and entries are never removed.
type Registry struct {
	converters *syncmap.Map[Converter]
	// alias -> target; an empty target marks a plain registration.
	aliases *syncmap.Map[string]
}

// Option configures a registry created with New.
type Option func(*Registry)

// WithConverter registers an additional converter.
func WithConverter(name string, converter Converter) Option {
	return func(r *Registry) {
		r.Register(name, converter)
	}
}

// WithoutBuiltins drops the built-in converters; options are applied in
// order, so it should come first.
func WithoutBuiltins() Option {
	return func(r *Registry) {
		r.converters = syncmap.NewRegistry[Converter]()
		r.aliases = syncmap.NewRegistry[string]()
	}
}

// New creates a registry with the built-in converters registered.
func New(opts ...Option) *Registry {
	r := newRegistry()
	registerBuiltins(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newRegistry() *Registry {
	return &Registry{
		converters: syncmap.NewRegistry[Converter](),
		aliases:    syncmap.NewRegistry[string](),
	}
}

// Register adds or replaces the converter for name.
func (r *Registry) Register(name string, converter Converter) {
	r.converters.Set(name, converter)
	if _, ok := r.aliases.Lookup(name); ok {
		r.aliases.Set(name, "")
	}
}

// Alias registers name as a converter delegating to target. The target is
// resolved on every call, so re-registering target is visible through name.
// An alias that would resolve back to itself is rejected with ErrAliasCycle.
func (r *Registry) Alias(name, target string) error {
	if name == target {
		return fmt.Errorf("alias %q: %w", name, ErrAliasCycle)
	}
	if resolved, err := r.resolve(target, name); err != nil {
		return fmt.Errorf("alias %q: %w", name, err)
	} else if resolved == name {
		return fmt.Errorf("alias %q: %w at %q", name, ErrAliasCycle, target)
	}
	r.converters.Set(name, func(val interface{}, ctx interface{}) (interface{}, error) {
		resolved, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		return r.Convert(NewValue(val, ctx), resolved)
	})
	r.aliases.Set(name, target)
	return nil
}

// AliasTarget returns the name an alias delegates to.
func (r *Registry) AliasTarget(name string) (string, bool) {
	target, ok := r.aliases.Lookup(name)
	return target, ok && target != ""
}

// Resolve follows aliases from name to the first non-alias name.
func (r *Registry) Resolve(name string) (string, error) {
	return r.resolve(name, "")
}

// resolve follows the alias chain from name, stopping early at stop.
func (r *Registry) resolve(name, stop string) (string, error) {
	seen := map[string]bool{}
	for name != stop {
		target, ok := r.AliasTarget(name)
		if !ok {
			return name, nil
		}
		if seen[name] {
			return "", fmt.Errorf("%w at %q", ErrAliasCycle, name)
		}
		seen[name] = true
		name = target
	}
	return name, nil
}

// Supports reports whether a converter is registered for name.
func (r *Registry) Supports(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the converter registered for name.
func (r *Registry) Lookup(name string) (Converter, bool) {
	converter, ok := r.converters.Lookup(name)
	if !ok || converter == nil {
		return nil, false
	}
	return converter, true
}

// Names returns the sorted names of all registered converters.
func (r *Registry) Names() []string {
	var names []string
	for _, name := range r.converters.Keys() {
		if r.Supports(name) {
			names = append(names, name)
		}
	}
	return names
}

// Convert applies the converter registered for name to value. The converter
// result and error are returned unchanged.
func (r *Registry) Convert(value *Value, name string) (interface{}, error) {
	converter, ok := r.Lookup(name)
	if !ok {
		return nil, NewMissingConverterError(name)
	}
	var val, ctx interface{}
	if value != nil {
		val, ctx = value.val, value.ctx
	}
	return converter(val, ctx)
}

var defaultRegistry = newRegistry()

func init() {
	registerBuiltins(defaultRegistry)
}

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds or replaces a converter in the default registry.
func Register(name string, converter Converter) { defaultRegistry.Register(name, converter) }

// Supports reports whether the default registry can convert to name.
func Supports(name string) bool { return defaultRegistry.Supports(name) }

// Lookup returns a converter from the default registry.
func Lookup(name string) (Converter, bool) { return defaultRegistry.Lookup(name) }

// Convert converts value with the default registry.
func Convert(value *Value, name string) (interface{}, error) {
	return defaultRegistry.Convert(value, name)
}
