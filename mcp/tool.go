package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/fluxor-dynamic/internal/conv"
	"github.com/viant/fluxor-dynamic/mcp/matcher"
	"github.com/viant/fluxor-dynamic/mcp/tool"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns all tool entries in registration order.
func (s *Service) Tools() serverproto.Tools {
	s.mu.RLock()
	entries := make([]toolEntry, len(s.mcpTools))
	copy(entries, s.mcpTools)
	s.mu.RUnlock()

	result := make(serverproto.Tools, 0, len(entries))
	for i := range entries {
		result = append(result, s.newToolEntry(&entries[i]))
	}
	return result
}

// LookupTool returns the tool entry for name; service/method and
// service.method forms are accepted too.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	e, ok := s.toolEntryByName(tool.Canonical(name))
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return s.newToolEntry(e), nil
}

// MatchTools returns tools whose name, or service/method form, matches
// pattern (see matcher.Match).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, t := range s.Tools() {
		name := tool.Name(t.Metadata.Name)
		if matcher.Match(pattern, name.String()) || matcher.Match(pattern, name.Service()+"/"+name.Method()) {
			result = append(result, t)
		}
	}
	return result
}

func (s *Service) newToolEntry(e *toolEntry) *serverproto.ToolEntry {
	return &serverproto.ToolEntry{
		Metadata: e.metadata,
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			res := &mcpschema.CallToolResult{}
			args, err := s.binder.BindRequest(ctx, e.metadata.InputSchema, request)
			var output interface{}
			if err == nil {
				output, err = s.invoke(ctx, e, args)
			}
			if err != nil {
				res.IsError = conv.Pointer[bool](true)
				res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
					Type: "text",
					Text: err.Error(),
				})
				return res, nil
			}

			var data []byte
			switch actual := output.(type) {
			case string:
				data = []byte(actual)
			case []byte:
				data = actual
			default:
				if data, err = json.Marshal(output); err != nil {
					return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
				}
			}
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: string(data),
			})
			return res, nil
		},
	}
}

// invoke calls the action method directly with already bound arguments.
func (s *Service) invoke(ctx context.Context, e *toolEntry, args map[string]interface{}) (interface{}, error) {
	svc := s.Workflow.Service.Actions().Lookup(e.service)
	if svc == nil {
		return nil, fmt.Errorf("service %q not found", e.service)
	}
	exec, err := svc.Method(e.method)
	if err != nil {
		return nil, err
	}
	input := newValue(e.signature.Input)
	if input != nil {
		if err := conv.Convert(args, input); err != nil {
			return nil, fmt.Errorf("failed to decode %s input: %w", e.name, err)
		}
	}
	output := newValue(e.signature.Output)
	if err := exec(ctx, input, output); err != nil {
		return nil, err
	}
	return output, nil
}

// BindArguments coerces args with the tool input schema.
func (s *Service) BindArguments(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error) {
	e, ok := s.toolEntryByName(tool.Canonical(name))
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return s.binder.Bind(ctx, e.metadata.InputSchema, args)
}

// ExecuteTool binds the arguments and schedules the action on the workflow
// runtime, waiting up to timeout for the result.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	e, ok := s.toolEntryByName(tool.Canonical(name))
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	bound, err := s.binder.Bind(ctx, e.metadata.InputSchema, args)
	if err != nil {
		return nil, err
	}

	exec, err := execution.NewAtHocExecution(e.service, e.method, bound)
	if err != nil {
		return nil, err
	}
	waitFn, err := s.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return nil, err
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return nil, err
	}
	if anExec.Error != "" {
		return nil, fmt.Errorf("%s: %s", e.name, anExec.Error)
	}
	return anExec.Output, nil
}
