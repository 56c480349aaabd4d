package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/viant/fluxor-dynamic/dynamic"
)

// TypesCmd prints every registered type converter.
type TypesCmd struct{}

func (c *TypesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	return c.list(svc.Registry(), os.Stdout)
}

func (c *TypesCmd) list(registry *dynamic.Registry, w io.Writer) error {
	for _, name := range registry.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
