package conversion

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxor/model/types"
)

type convertInput struct {
	Value interface{} `json:"value,omitempty"`
	Type  string      `json:"type"`
}

type convertOutput struct {
	Supported bool `json:"supported"`
}

func TestBuildSchema(t *testing.T) {
	sig := &types.Signature{
		Name:        "convert",
		Description: "convert value",
		Input:       reflect.TypeOf(&convertInput{}),
		Output:      reflect.TypeOf(&convertOutput{}),
	}
	tool, err := BuildSchema(sig)
	require.NoError(t, err)
	assert.Equal(t, "convert", tool.Name)
	assert.Equal(t, "convert value", *tool.Description)
	assert.Contains(t, tool.InputSchema.Properties, "type")
	assert.Equal(t, "string", tool.InputSchema.Properties["type"]["type"])
	require.NotNil(t, tool.OutputSchema)
	assert.Contains(t, tool.OutputSchema.Properties, "supported")
}

func TestBuildSchema_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		sig  *types.Signature
	}{
		{name: "missing input", sig: &types.Signature{Name: "a", Output: reflect.TypeOf(convertOutput{})}},
		{name: "missing output", sig: &types.Signature{Name: "b", Input: reflect.TypeOf(convertInput{})}},
		{name: "non struct output", sig: &types.Signature{Name: "c", Input: reflect.TypeOf(convertInput{}), Output: reflect.TypeOf("")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSchema(tc.sig)
			assert.Error(t, err)
		})
	}
}
