package registry

import (
	"reflect"
	"sync"

	"github.com/viant/xconv/descriptor"
)

type (
	// Converter converts value to target type, defaultValue is returned when conversion is not possible
	Converter interface {
		Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error)
	}

	// Func adapts a function to Converter
	Func func(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error)

	// Registry represents two tier (builtin, custom) converter registry keyed by exact type
	Registry struct {
		builtins map[reflect.Type]Converter
		customs  sync.Map // map[reflect.Type]Converter
	}
)

// Convert calls f
func (f Func) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	return f(target, value, defaultValue)
}

// Register registers custom converter, existing custom converter is replaced
func (r *Registry) Register(rType reflect.Type, converter Converter) {
	r.customs.Store(rType, converter)
}

// Lookup returns a converter for supplied type, customFirst controls which tier is probed first
func (r *Registry) Lookup(rType reflect.Type, customFirst bool) (Converter, bool) {
	if rType == nil {
		return nil, false
	}
	if customFirst {
		if ret, ok := r.Custom(rType); ok {
			return ret, true
		}
		return r.Builtin(rType)
	}
	if ret, ok := r.Builtin(rType); ok {
		return ret, true
	}
	return r.Custom(rType)
}

// Builtin returns builtin converter
func (r *Registry) Builtin(rType reflect.Type) (Converter, bool) {
	ret, ok := r.builtins[rType]
	return ret, ok
}

// Custom returns custom converter
func (r *Registry) Custom(rType reflect.Type) (Converter, bool) {
	value, ok := r.customs.Load(rType)
	if !ok {
		return nil, false
	}
	return value.(Converter), true
}

// New creates a registry with supplied builtin converters, builtins are never modified afterwards
func New(builtins map[reflect.Type]Converter) *Registry {
	ret := &Registry{builtins: make(map[reflect.Type]Converter, len(builtins))}
	for k, v := range builtins {
		ret.builtins[k] = v
	}
	return ret
}
