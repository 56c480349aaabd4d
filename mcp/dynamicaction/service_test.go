package dynamicaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxor-dynamic/dynamic"
)

func TestService_Convert(t *testing.T) {
	svc := New(dynamic.New())
	exec, err := svc.Method("convert")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		input  interface{}
		expect *ConvertOutput
	}{
		{
			name:   "typed boolean",
			input:  &ConvertInput{Value: "null", Type: "boolean"},
			expect: &ConvertOutput{Type: "boolean", Value: false},
		},
		{
			name:   "map number",
			input:  map[string]interface{}{"value": "3.14", "type": "number"},
			expect: &ConvertOutput{Type: "number", Value: 3.14},
		},
		{
			name:   "not a number",
			input:  &ConvertInput{Value: "abc", Type: "number"},
			expect: &ConvertOutput{Type: "number", Value: "NaN", Special: true},
		},
		{
			name:   "infinity",
			input:  &ConvertInput{Value: "-Infinity", Type: "number"},
			expect: &ConvertOutput{Type: "number", Value: "-Infinity", Special: true},
		},
		{
			name:   "falsy passthrough",
			input:  &ConvertInput{Value: nil, Type: "number"},
			expect: &ConvertOutput{Type: "number"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &ConvertOutput{}
			require.NoError(t, exec(context.Background(), tc.input, out))
			assert.Equal(t, tc.expect, out)
		})
	}
}

func TestService_ConvertErrors(t *testing.T) {
	svc := New(dynamic.New())
	exec, err := svc.Method("convert")
	require.NoError(t, err)

	err = exec(context.Background(), &ConvertInput{Value: "1", Type: "unregistered_xyz"}, &ConvertOutput{})
	require.Error(t, err)
	assert.True(t, dynamic.IsMissingConverter(err))
	assert.Contains(t, err.Error(), "unregistered_xyz")

	err = exec(context.Background(), &ConvertInput{Value: "1"}, &ConvertOutput{})
	assert.Error(t, err)
}

func TestService_ContextPassedToConverter(t *testing.T) {
	type key struct{}
	registry := dynamic.New()
	registry.Register("tenant", func(val interface{}, ctx interface{}) (interface{}, error) {
		return ctx.(context.Context).Value(key{}), nil
	})
	exec, err := New(registry).Method("convert")
	require.NoError(t, err)

	var out interface{}
	ctx := context.WithValue(context.Background(), key{}, "acme")
	require.NoError(t, exec(ctx, &ConvertInput{Value: "x", Type: "tenant"}, &out))
	assert.Equal(t, "acme", out.(*ConvertOutput).Value)
}

func TestService_SupportsAndTypes(t *testing.T) {
	svc := New(dynamic.New())
	assert.Equal(t, Name, svc.Name())
	assert.Len(t, svc.Methods(), 3)
	assert.NotNil(t, svc.Methods().Lookup("supports"))

	supports, err := svc.Method("supports")
	require.NoError(t, err)
	out := &SupportsOutput{}
	require.NoError(t, supports(context.Background(), map[string]interface{}{"type": "boolean"}, out))
	assert.True(t, out.Supported)
	require.NoError(t, supports(context.Background(), &SupportsInput{Type: "unregistered_xyz"}, out))
	assert.False(t, out.Supported)

	typesExec, err := svc.Method("types")
	require.NoError(t, err)
	list := &TypesOutput{}
	require.NoError(t, typesExec(context.Background(), nil, list))
	assert.Equal(t, []string{"boolean", "number"}, list.Types)

	_, err = svc.Method("unknown")
	assert.Error(t, err)
}
