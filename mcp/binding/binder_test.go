package binding

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxor-dynamic/dynamic"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

func testSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"flag":     {"type": "boolean"},
			"count":    {"type": "number"},
			"limit":    {"type": "integer"},
			"name":     {"type": "string"},
			"email":    {"type": "string", "format": "email"},
			"since":    {"type": "string", "format": "date-time"},
			"day":      {"type": "string", "format": "date"},
			"tags":     {"type": "array", "items": map[string]interface{}{"type": "string"}},
			"meta":     {"type": "object"},
			"optional": {"type": []interface{}{"null", "boolean"}},
			"any":      {},
		},
	}
}

func TestBinder_Bind(t *testing.T) {
	binder := New(dynamic.New())

	testCases := []struct {
		name     string
		argument string
		input    interface{}
		expect   interface{}
	}{
		{name: "boolean false text", argument: "flag", input: "false", expect: false},
		{name: "boolean true text", argument: "flag", input: "yes", expect: true},
		{name: "boolean number", argument: "flag", input: 0.0, expect: false},
		{name: "number text", argument: "count", input: "42", expect: 42.0},
		{name: "number empty passthrough", argument: "count", input: "", expect: ""},
		{name: "number nil passthrough", argument: "count", input: nil, expect: nil},
		{name: "integer truncation", argument: "limit", input: "7.9", expect: 7.0},
		{name: "integer negative", argument: "limit", input: -2.5, expect: -2.0},
		{name: "string number", argument: "name", input: 5.0, expect: "5"},
		{name: "string unsupported format", argument: "email", input: true, expect: "true"},
		{name: "date-time", argument: "since", input: "2024-01-02T03:04:05Z", expect: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "date", argument: "day", input: "2024-01-02T23:04:05Z", expect: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "array passthrough", argument: "tags", input: []interface{}{"1"}, expect: []interface{}{"1"}},
		{name: "object passthrough", argument: "meta", input: map[string]interface{}{"a": "1"}, expect: map[string]interface{}{"a": "1"}},
		{name: "nullable type", argument: "optional", input: "0", expect: false},
		{name: "untyped passthrough", argument: "any", input: "0", expect: "0"},
		{name: "undeclared passthrough", argument: "extra", input: "0", expect: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := binder.Bind(context.Background(), testSchema(), map[string]interface{}{tc.argument: tc.input})
			require.NoError(t, err)
			assert.Equal(t, tc.expect, out[tc.argument])
		})
	}
}

func TestBinder_BindNaN(t *testing.T) {
	binder := New(dynamic.New())
	out, err := binder.Bind(context.Background(), testSchema(), map[string]interface{}{"count": "abc"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out["count"].(float64)))
}

func TestBinder_MissingConverter(t *testing.T) {
	binder := New(dynamic.New())
	schema := mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{"mode": {"type": "string", TypeKey: "mode"}},
	}
	_, err := binder.Bind(context.Background(), schema, map[string]interface{}{"mode": "fast"})
	require.Error(t, err)
	assert.True(t, dynamic.IsMissingConverter(err))
	assert.Contains(t, err.Error(), `"mode"`)
	assert.Contains(t, err.Error(), "no type converter defined for mode")
}

func TestBinder_BindRequest(t *testing.T) {
	registry := dynamic.New()
	registry.Register("upper", func(val interface{}, ctx interface{}) (interface{}, error) {
		bindCtx := ctx.(*Context)
		return bindCtx.Request.Params.Name + ":" + bindCtx.Argument + ":" + strings.ToUpper(val.(string)), nil
	})
	binder := New(registry)

	schema := mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{"code": {"type": "string", TypeKey: "upper"}},
	}
	request := &mcpschema.CallToolRequest{}
	request.Params.Name = "dynamic-convert"
	request.Params.Arguments = map[string]interface{}{"code": "abc"}

	out, err := binder.BindRequest(context.Background(), schema, request)
	require.NoError(t, err)
	assert.Equal(t, "dynamic-convert:code:ABC", out["code"])

	_, err = binder.BindRequest(context.Background(), schema, nil)
	assert.Error(t, err)
}

func TestNew_KeepsRegisteredConverters(t *testing.T) {
	registry := dynamic.New()
	registry.Register(TypeString, func(val interface{}, ctx interface{}) (interface{}, error) {
		return "custom", nil
	})
	binder := New(registry)
	assert.True(t, registry.Supports(TypeInteger))
	assert.True(t, registry.Supports(TypeDateTime))

	out, err := binder.Bind(context.Background(), testSchema(), map[string]interface{}{"name": 1})
	require.NoError(t, err)
	assert.Equal(t, "custom", out["name"])
}

func TestBinder_Location(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	binder := New(dynamic.New(), WithLocation(loc))
	out, err := binder.Bind(context.Background(), testSchema(), map[string]interface{}{"since": "2024-01-02 10:00:00"})
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC).Equal(out["since"].(time.Time)))
}

func TestBinder_TypeName(t *testing.T) {
	binder := New(dynamic.New())
	assert.Equal(t, "date-time", binder.TypeName(map[string]interface{}{"type": "string", "format": "date-time"}))
	assert.Equal(t, "string", binder.TypeName(map[string]interface{}{"type": "string", "format": "uri"}))
	assert.Equal(t, "number", binder.TypeName(map[string]interface{}{"type": []string{"null", "number"}}))
	assert.Equal(t, "custom", binder.TypeName(map[string]interface{}{"type": "string", TypeKey: "custom"}))
	assert.Equal(t, "", binder.TypeName(nil))
}

func TestConverters(t *testing.T) {
	out, err := DateTime("not a date", nil)
	assert.Error(t, err)
	assert.Nil(t, out)

	out, err = DateTime(true, nil)
	assert.Error(t, err)

	for _, huge := range []interface{}{1e300, -1e300, float64(1e19), math.Inf(1), math.NaN()} {
		out, err = DateTime(huge, nil)
		assert.Error(t, err, huge)
		assert.Nil(t, out)
	}

	out, err = DateTime(float64(1000), nil)
	require.NoError(t, err)
	assert.True(t, time.Unix(1, 0).Equal(out.(time.Time)))

	out, err = DateTime("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = String(map[string]interface{}{"a": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)

	out, err = Integer("abc", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.(float64)))

	out, err = Integer(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out)
}
