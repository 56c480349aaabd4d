package binding

import (
	"context"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Context is the conversion context passed to converters while binding.
type Context struct {
	context.Context
	// Request is the tool call being bound, nil for direct executions.
	Request *mcpschema.CallToolRequest
	// Argument is the name of the argument being converted.
	Argument string
	// Property is the argument JSON schema.
	Property map[string]interface{}
	// Location is used for date layouts without a zone.
	Location *time.Location
}

func location(ctx interface{}) *time.Location {
	if c, ok := ctx.(*Context); ok && c.Location != nil {
		return c.Location
	}
	return time.UTC
}
