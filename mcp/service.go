package mcp

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor-dynamic/dynamic"
	"github.com/viant/fluxor-dynamic/mcp/binding"
	"github.com/viant/fluxor-dynamic/mcp/config"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// Service bundles configuration, the converter registry, an argument binder
// and a Fluxor workflow engine. Bootstrap lives in bootstrap.go.
type Service struct {
	Workflow
	started  int32
	config   *config.Config
	registry *dynamic.Registry
	binder   *binding.Binder

	// guard concurrent modifications.
	mu sync.RWMutex
	// tool definitions built from Fluxor actions.
	mcpTools []toolEntry
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service instance that exposes all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Registry returns the converter registry used for argument binding.
func (s *Service) Registry() *dynamic.Registry { return s.registry }

// Binder returns the argument binder.
func (s *Service) Binder() *binding.Binder { return s.binder }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithRegistry sets the converter registry, the process-wide one by default.
func WithRegistry(registry *dynamic.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithWorkflowOptions appends additional Fluxor options.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services in addition to those coming
// from the configuration.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// WithExtensionTypes registers additional types with the workflow engine.
func WithExtensionTypes(extTypes ...*x.Type) Option {
	return func(s *Service) {
		s.Workflow.ExtensionTypes = append(s.Workflow.ExtensionTypes, extTypes...)
	}
}

// New constructs and starts a service.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the underlying Fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Additional invocations have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
