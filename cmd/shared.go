package cmd

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/viant/fluxor-dynamic/mcp"
	mcpconfig "github.com/viant/fluxor-dynamic/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command runs first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once per CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			if cfg, err = mcpconfig.Load(ctx, cfgPath); err != nil {
				svcErr = err
				return
			}
			if debug := os.Getenv("DYNAMIC_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}
