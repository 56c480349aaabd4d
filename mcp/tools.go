package mcp

import (
	"reflect"
	"sort"

	iconv "github.com/viant/fluxor-dynamic/internal/conv"
	"github.com/viant/fluxor-dynamic/mcp/tool"
	conv "github.com/viant/fluxor-dynamic/mcp/tool/conversion"
	"github.com/viant/fluxor/model/types"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// toolEntry holds metadata for one MCP tool derived from a Fluxor action method.
type toolEntry struct {
	name      string
	service   string
	method    string
	signature types.Signature
	metadata  mcpschema.Tool
}

// buildMcpToolRegistry converts every registered action method into a tool
// entry once during bootstrap.
func (s *Service) buildMcpToolRegistry() {
	if s.Workflow.Service == nil {
		return
	}
	actions := s.Workflow.Service.Actions()
	names := actions.Services()
	sort.Strings(names)
	for _, name := range names {
		if svc := actions.Lookup(name); svc != nil {
			s.addToolEntries(serviceToToolEntries(svc))
		}
	}
}

// RegisterService adds an action service after bootstrap and exposes its
// methods as tools.
func (s *Service) RegisterService(svc types.Service) error {
	if err := s.Workflow.Service.Actions().Register(svc); err != nil {
		return err
	}
	s.addToolEntries(serviceToToolEntries(svc))
	return nil
}

// addToolEntries appends tool entries, keeping the first definition of a name.
func (s *Service) addToolEntries(entries []toolEntry) {
	if len(entries) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.mcpTools))
	for _, e := range s.mcpTools {
		existing[e.name] = struct{}{}
	}
	for _, e := range entries {
		if _, dup := existing[e.name]; dup {
			continue
		}
		s.mcpTools = append(s.mcpTools, e)
		existing[e.name] = struct{}{}
	}
}

// serviceToToolEntries converts a single Fluxor service to tool entries.
func serviceToToolEntries(svc types.Service) []toolEntry {
	entries := make([]toolEntry, 0, len(svc.Methods()))
	for _, sig := range svc.Methods() {
		sigCopy := sig
		name := tool.NewName(svc.Name(), sig.Name).String()

		var meta mcpschema.Tool
		var buildErr error
		if sig.Input != nil && sig.Output != nil {
			meta, buildErr = conv.BuildSchema(&sigCopy)
		}
		if buildErr != nil || sig.Input == nil || sig.Output == nil {
			// input-only schema derived via reflection
			var inputSchema mcpschema.ToolInputSchema
			if sample := newValue(sig.Input); sample != nil {
				_ = inputSchema.Load(sample)
			}
			meta = mcpschema.Tool{InputSchema: inputSchema}
		}
		meta.Name = name
		if meta.Description == nil {
			meta.Description = &sigCopy.Description
		}
		if meta.InputSchema.Type == "" {
			meta.InputSchema.Type = "object"
		}
		entries = append(entries, toolEntry{
			name:      name,
			service:   svc.Name(),
			method:    sig.Name,
			signature: sigCopy,
			metadata:  meta,
		})
	}
	return entries
}

// newValue allocates a value for a signature type; pointer types yield a
// pointer to a new element.
func newValue(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// toolEntryByName returns a copy of the entry with the given name.
func (s *Service) toolEntryByName(name string) (*toolEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.mcpTools {
		if s.mcpTools[i].name == name {
			e := s.mcpTools[i]
			return &e, true
		}
	}
	return nil, false
}

// ToolNames returns all tool names. The slice is a copy.
func (s *Service) ToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.mcpTools))
	for i, e := range s.mcpTools {
		names[i] = e.name
	}
	return names
}

// ToolMetadata returns description and input schema for a named tool. The
// second return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	e, ok := s.toolEntryByName(tool.Canonical(name))
	if !ok {
		return "", nil, false
	}
	return iconv.Dereference[string](e.metadata.Description), e.metadata.InputSchema, true
}
