package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServiceMatchTools verifies that MatchTools accepts tool names as well as
// the service/method form.
func TestServiceMatchTools(t *testing.T) {
	svc := newTestService(t, WithExtensions(&calcService{}))

	all := svc.Tools()
	star := svc.MatchTools("*")
	assert.EqualValues(t, len(all), len(star))

	prefix := svc.MatchTools("dynamic/")
	assert.Len(t, prefix, 3)
	for _, te := range prefix {
		assert.Contains(t, []string{"dynamic-convert", "dynamic-supports", "dynamic-types"}, te.Metadata.Name)
	}

	exact := svc.MatchTools("calc-scale")
	if assert.Len(t, exact, 1) {
		assert.EqualValues(t, "calc-scale", exact[0].Metadata.Name)
	}

	assert.Empty(t, svc.MatchTools(""))
}
