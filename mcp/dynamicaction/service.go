package dynamicaction

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/viant/fluxor-dynamic/dynamic"
	"github.com/viant/fluxor-dynamic/internal/conv"
	"github.com/viant/fluxor/model/types"
)

// Name is the action service name
const Name = "dynamic"

// Service implements types.Service on top of a converter registry.
type Service struct {
	registry  *dynamic.Registry
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New creates the action service; a nil registry means the default one.
func New(registry *dynamic.Registry) *Service {
	if registry == nil {
		registry = dynamic.Default()
	}
	s := &Service{registry: registry, executors: map[string]types.Executable{}}

	type op struct {
		name string
		desc string
		in   reflect.Type
		out  reflect.Type
		call func(ctx context.Context, in interface{}) (interface{}, error)
	}
	ops := []op{
		{
			name: "convert",
			desc: "Convert a value to a registered type",
			in:   reflect.TypeOf(&ConvertInput{}),
			out:  reflect.TypeOf(&ConvertOutput{}),
			call: func(ctx context.Context, in interface{}) (interface{}, error) {
				return s.convert(ctx, in.(*ConvertInput))
			},
		},
		{
			name: "supports",
			desc: "Check whether a type converter is registered",
			in:   reflect.TypeOf(&SupportsInput{}),
			out:  reflect.TypeOf(&SupportsOutput{}),
			call: func(ctx context.Context, in interface{}) (interface{}, error) {
				return &SupportsOutput{Supported: s.registry.Supports(in.(*SupportsInput).Type)}, nil
			},
		},
		{
			name: "types",
			desc: "List registered type converters",
			in:   reflect.TypeOf(&TypesInput{}),
			out:  reflect.TypeOf(&TypesOutput{}),
			call: func(ctx context.Context, in interface{}) (interface{}, error) {
				return &TypesOutput{Types: s.registry.Names()}, nil
			},
		},
	}

	for _, o := range ops {
		opCopy := o
		s.executors[opCopy.name] = func(ctx context.Context, input, output interface{}) error {
			// Accept either the typed input or a generic map.
			var param interface{}
			if input != nil && reflect.TypeOf(input) == opCopy.in {
				param = input
			} else {
				param = reflect.New(opCopy.in.Elem()).Interface()
				if err := conv.Convert(input, param); err != nil {
					return fmt.Errorf("%s: invalid input: %w", opCopy.name, err)
				}
			}
			res, err := opCopy.call(ctx, param)
			if err != nil {
				return err
			}
			if output == nil {
				return nil
			}
			switch outPtr := output.(type) {
			case *interface{}:
				*outPtr = res
				return nil
			}
			if reflect.TypeOf(output) == opCopy.out {
				reflect.ValueOf(output).Elem().Set(reflect.ValueOf(res).Elem())
				return nil
			}
			return conv.Convert(res, output)
		}
		s.sigs = append(s.sigs, types.Signature{
			Name:        opCopy.name,
			Description: opCopy.desc,
			Input:       opCopy.in,
			Output:      opCopy.out,
		})
	}
	return s
}

func (s *Service) convert(ctx context.Context, in *ConvertInput) (*ConvertOutput, error) {
	if in.Type == "" {
		return nil, fmt.Errorf("type was empty")
	}
	value, err := s.registry.Convert(dynamic.NewValue(in.Value, ctx), in.Type)
	if err != nil {
		return nil, err
	}
	out := &ConvertOutput{Type: in.Type, Value: value}
	if f, ok := value.(float64); ok {
		switch {
		case math.IsNaN(f):
			out.Value, out.Special = "NaN", true
		case math.IsInf(f, 1):
			out.Value, out.Special = "Infinity", true
		case math.IsInf(f, -1):
			out.Value, out.Special = "-Infinity", true
		}
	}
	return out, nil
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
