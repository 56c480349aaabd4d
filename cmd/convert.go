package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/viant/fluxor-dynamic/dynamic"
)

// ConvertCmd converts a single value with the service registry, so that
// configured aliases apply too.
type ConvertCmd struct {
	Type    string `short:"t" long:"type" description:"target type name" required:"yes"`
	Value   string `short:"v" long:"value" description:"raw value (text unless --raw-json)"`
	RawJSON bool   `long:"raw-json" description:"decode value as a JSON literal first, e.g. 0, null or true"`
	JSON    bool   `long:"json" description:"print result as JSON"`
}

func (c *ConvertCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	return c.convert(svc.Registry(), os.Stdout)
}

func (c *ConvertCmd) convert(registry *dynamic.Registry, w io.Writer) error {
	var raw interface{} = c.Value
	if c.RawJSON {
		raw = nil
		if err := json.Unmarshal([]byte(c.Value), &raw); err != nil {
			return fmt.Errorf("invalid JSON value: %w", err)
		}
	}
	out, err := registry.Convert(dynamic.NewValue(raw, context.Background()), c.Type)
	if err != nil {
		return err
	}
	if c.JSON {
		data, err := json.Marshal(map[string]interface{}{"type": c.Type, "value": out})
		if err != nil {
			// NaN and infinities have no JSON form
			data, _ = json.Marshal(map[string]interface{}{"type": c.Type, "value": fmt.Sprint(out)})
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err = fmt.Fprintf(w, "%v (%T)\n", out, out)
	return err
}
