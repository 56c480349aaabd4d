package mcp

import (
	"sort"

	"github.com/viant/fluxor-dynamic/mcp/matcher"
	"github.com/viant/fluxor/model/types"

	// Built-in action packages – only those with parameter-less New()
	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists Fluxor action services that can be exposed next to
// the dynamic service. Keys match the service names.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices instantiates the built-ins selected by patterns
// ("*", prefix or exact name, see matcher.Match) in name order.
func resolveBuiltinServices(patterns []string) []types.Service {
	var names []string
	for name := range builtinFactories {
		if matcher.MatchAny(patterns, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}
