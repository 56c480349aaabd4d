package binding

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/viant/fluxor-dynamic/dynamic"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// TypeKey is the schema extension keyword that names a converter explicitly.
const TypeKey = "x-dynamic-type"

// Binder converts tool-call arguments with a converter registry.
type Binder struct {
	registry *dynamic.Registry
	location *time.Location
}

// Option configures a Binder
type Option func(*Binder)

// WithLocation sets the location used for dates without a zone.
func WithLocation(loc *time.Location) Option {
	return func(b *Binder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// New creates a binder. The string, integer, date and date-time converters are
// added to the registry unless it already supports those names. A nil registry
// means the default one.
func New(registry *dynamic.Registry, opts ...Option) *Binder {
	if registry == nil {
		registry = dynamic.Default()
	}
	b := &Binder{registry: registry, location: time.UTC}
	for _, opt := range opts {
		opt(b)
	}
	for name, converter := range converters() {
		if !registry.Supports(name) {
			registry.Register(name, converter)
		}
	}
	return b
}

// TypeName resolves the converter name for a property schema: the TypeKey
// extension first, then a supported format, then the JSON type. Nullable type
// lists resolve to their first non-null entry.
func (b *Binder) TypeName(property map[string]interface{}) string {
	if name, ok := property[TypeKey].(string); ok && name != "" {
		return name
	}
	if format, ok := property["format"].(string); ok && b.registry.Supports(format) {
		return format
	}
	switch v := property["type"].(type) {
	case string:
		return v
	case []string:
		for _, item := range v {
			if item != "null" {
				return item
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

// Bind converts args according to the input schema.
func (b *Binder) Bind(ctx context.Context, inputSchema mcpschema.ToolInputSchema, args map[string]interface{}) (map[string]interface{}, error) {
	return b.bind(ctx, inputSchema, args, nil)
}

// BindRequest converts the request arguments; converters see the request
// through Context.
func (b *Binder) BindRequest(ctx context.Context, inputSchema mcpschema.ToolInputSchema, request *mcpschema.CallToolRequest) (map[string]interface{}, error) {
	if request == nil {
		return nil, fmt.Errorf("request was nil")
	}
	return b.bind(ctx, inputSchema, request.Params.Arguments, request)
}

func (b *Binder) bind(ctx context.Context, inputSchema mcpschema.ToolInputSchema, args map[string]interface{}, request *mcpschema.CallToolRequest) (map[string]interface{}, error) {
	if args == nil {
		return nil, nil
	}
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]interface{}, len(args))
	for _, name := range names {
		raw := args[name]
		property := inputSchema.Properties[name]
		typeName := b.TypeName(property)
		switch typeName {
		case "", "object", "array", "null", "any":
			result[name] = raw
			continue
		}
		value := dynamic.NewValue(raw, &Context{
			Context:  ctx,
			Request:  request,
			Argument: name,
			Property: property,
			Location: b.location,
		})
		converted, err := b.registry.Convert(value, typeName)
		if err != nil {
			return nil, fmt.Errorf("failed to bind argument %q: %w", name, err)
		}
		result[name] = converted
	}
	return result, nil
}
