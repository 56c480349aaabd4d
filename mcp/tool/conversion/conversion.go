package conversion

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
)

// BuildSchema builds the MCP tool definition for an action signature.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	if sig.Input == nil || sig.Output == nil {
		return schema.Tool{}, fmt.Errorf("signature %s: input and output types are required", sig.Name)
	}
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(reflect.New(elem(sig.Input)).Interface()); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	output := elem(sig.Output)
	if output.Kind() != reflect.Struct {
		return schema.Tool{}, fmt.Errorf("signature %s: output must be a struct, got %s", sig.Name, output.Kind())
	}
	props, required := schema.StructToProperties(output)
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
