package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor-dynamic/dynamic"
	"github.com/viant/fluxor-dynamic/mcp/binding"
	"github.com/viant/fluxor-dynamic/mcp/config"
	"github.com/viant/fluxor-dynamic/mcp/dynamicaction"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// init orchestrates the bootstrap steps once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.initBinding(); err != nil {
		return err
	}
	s.initWorkflowService()
	s.buildMcpToolRegistry()

	// Auto-start runtime so that callers get a ready-to-use instance.
	return s.Start(ctx)
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.registry == nil {
		s.registry = dynamic.Default()
	}
}

// initBinding registers configured aliases and creates the argument binder.
// Aliases are checked up front so that a failed bootstrap leaves the registry
// untouched.
func (s *Service) initBinding() error {
	loc, err := s.config.TimeLocation()
	if err != nil {
		return err
	}
	aliases := make([]string, 0, len(s.config.Aliases))
	for alias := range s.config.Aliases {
		if err := s.checkAlias(alias); err != nil {
			return err
		}
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		if err := s.registry.Alias(alias, s.config.Aliases[alias]); err != nil {
			return err
		}
	}
	s.binder = binding.New(s.registry, binding.WithLocation(loc))
	return nil
}

// checkAlias follows the alias chain across the configuration and the
// registry; the chain must end at a converter that is registered or provided
// by the binder.
func (s *Service) checkAlias(alias string) error {
	seen := map[string]bool{alias: true}
	name := s.config.Aliases[alias]
	for {
		if seen[name] {
			return fmt.Errorf("alias %q: %w at %q", alias, dynamic.ErrAliasCycle, name)
		}
		seen[name] = true
		if next, ok := s.config.Aliases[name]; ok {
			name = next
			continue
		}
		if next, ok := s.registry.AliasTarget(name); ok {
			name = next
			continue
		}
		break
	}
	if !s.registry.Supports(name) && !binding.Provides(name) {
		return fmt.Errorf("alias %q: %w", alias, dynamic.NewMissingConverterError(name))
	}
	return nil
}

// initWorkflowService assembles the list of Fluxor options and instantiates
// the engine with the dynamic action service and the selected built-ins.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)

	s.Workflow.ExtensionTypes = append(append([]*x.Type{}, s.config.ExtensionTypes...), s.Workflow.ExtensionTypes...)
	if len(s.Workflow.ExtensionTypes) > 0 {
		opts = append(opts, fluxor.WithExtensionTypes(s.Workflow.ExtensionTypes...))
	}

	extensions := append([]types.Service{}, s.config.Extensions...)
	extensions = append(extensions, dynamicaction.New(s.registry))
	extensions = append(extensions, resolveBuiltinServices(s.config.Builtins)...)
	s.Workflow.Extensions = append(extensions, s.Workflow.Extensions...)
	opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))

	// Workflow options passed through WithWorkflowOptions come last so that
	// callers can override defaults.
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
