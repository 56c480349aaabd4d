package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	type input struct {
		Value interface{} `json:"value"`
		Type  string      `json:"type"`
	}

	testCases := []struct {
		name   string
		in     interface{}
		expect *input
	}{
		{name: "assignable", in: &input{Type: "number"}, expect: &input{Type: "number"}},
		{name: "map", in: map[string]interface{}{"value": "1", "type": "boolean"}, expect: &input{Value: "1", Type: "boolean"}},
		{name: "nil", in: nil, expect: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out *input
			require.NoError(t, Convert(tc.in, &out))
			assert.Equal(t, tc.expect, out)
		})
	}

	assert.Error(t, Convert(1, nil))
	var target int
	assert.Error(t, Convert(1, target))
}

func TestPointer(t *testing.T) {
	assert.Equal(t, 3, *Pointer(3))
	assert.Equal(t, "", Dereference[string](nil))
	assert.Equal(t, "x", Dereference(Pointer("x")))
}
