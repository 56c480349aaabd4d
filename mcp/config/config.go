package config

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

type Config struct {
	Server         *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Options        []fluxor.Option    `yaml:"-" json:"-"`
	Extensions     []types.Service    `yaml:"-" json:"-"`
	ExtensionTypes []*x.Type          `yaml:"-" json:"-"`
	// Builtins selects Fluxor built-in action services, e.g. "*" or "system/".
	Builtins []string `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	// Aliases maps additional type names to registered converters.
	Aliases map[string]string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	// Location is an IANA time zone for date values without a zone.
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
}

// Load reads the configuration from a local path or any afs supported URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate checks aliases and location.
func (c *Config) Validate() error {
	for alias, target := range c.Aliases {
		if alias == "" || target == "" {
			return fmt.Errorf("invalid alias %q: %q", alias, target)
		}
		seen := map[string]bool{alias: true}
		for next, ok := target, true; ok; next, ok = c.Aliases[next] {
			if seen[next] {
				return fmt.Errorf("alias %q: cycle at %q", alias, next)
			}
			seen[next] = true
		}
	}
	_, err := c.TimeLocation()
	return err
}

// TimeLocation returns the configured location, UTC by default.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}
