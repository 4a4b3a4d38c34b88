// Package strategy provides stateless conversion strategies: primitive, number, enum, array,
// collection, map and record, together with builtin converters for common library types.
// Nested values (elements, keys, fields) are converted through the Dispatcher.
package strategy

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/enum"
	"github.com/viant/xconv/introspect"
)

// DefaultDateLayout is the default layout used for time parsing and formatting
const DefaultDateLayout = "2006-01-02 15:04:05.000"

type (
	// Dispatcher converts nested values
	Dispatcher interface {
		Dispatch(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error)
	}

	// Config represents strategy collaborators and settings, shared read-only by all strategies
	Config struct {
		Dispatcher   Dispatcher
		Introspector introspect.FieldIntrospector
		Enums        *enum.Catalog
		Logger       *slog.Logger
		//DateLayout time layout used for text to/from time conversion
		DateLayout string
		//CaseSensitive controls whether record field matching is case sensitive
		CaseSensitive bool
		//IgnoreFieldErrors skips record fields that failed to convert
		IgnoreFieldErrors bool
	}

	// Set represents all strategies bound to the same config
	Set struct {
		Primitive  *Primitive
		Number     *Number
		Enum       *Enum
		Array      *Array
		Collection *Collection
		Map        *Map
		Record     *Record
		builtin    *builtin
	}
)

// New creates strategies for supplied config
func New(config *Config) *Set {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.DateLayout == "" {
		config.DateLayout = DefaultDateLayout
	}
	if config.Introspector == nil {
		config.Introspector = introspect.New()
	}
	if config.Enums == nil {
		config.Enums = enum.NewCatalog()
	}
	primitive := &Primitive{config: config}
	ret := &Set{
		Primitive:  primitive,
		Number:     &Number{config: config, primitive: primitive},
		Enum:       &Enum{config: config},
		Array:      &Array{config: config},
		Collection: &Collection{config: config},
		Map:        &Map{config: config},
		Record:     &Record{config: config},
	}
	ret.builtin = &builtin{config: config, collection: ret.Collection}
	return ret
}

func (c *Config) fallback(target *descriptor.Type, value, defaultValue interface{}, err error) interface{} {
	c.Logger.Debug("conversion fell back to default",
		"target", target.String(),
		"source", fmt.Sprintf("%T", value),
		"default", defaultValue,
		"error", err)
	return defaultValue
}

// set assigns converted value to dest, mismatched values are logged and dest is left unchanged
func (c *Config) set(dest reflect.Value, value interface{}) {
	if err := assign(dest, value); err != nil {
		c.Logger.Debug("converted value was not assignable", "error", err)
	}
}

func assign(dest reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}
	source := reflect.ValueOf(value)
	if source.Type().AssignableTo(dest.Type()) {
		dest.Set(source)
		return nil
	}
	if source.Kind() == dest.Kind() && source.Type().ConvertibleTo(dest.Type()) {
		dest.Set(source.Convert(dest.Type()))
		return nil
	}
	return fmt.Errorf("can not assign %v to %v", source.Type(), dest.Type())
}

// widenable reports whether a value that is neither a container nor text can become a single element collection
func (c *Config) widenable(source reflect.Value) bool {
	switch source.Kind() {
	case reflect.Invalid, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return false
	case reflect.Struct:
		return !c.Introspector.IsRecord(source.Type())
	}
	return true
}

func indirect(value interface{}) reflect.Value {
	ret := reflect.ValueOf(value)
	for ret.Kind() == reflect.Ptr && !ret.IsNil() {
		ret = ret.Elem()
	}
	return ret
}

// containerType returns default value type when it is a more specific type of the same container kind
func containerType(target reflect.Type, defaultValue interface{}) reflect.Type {
	if defaultValue == nil {
		return target
	}
	candidate := reflect.TypeOf(defaultValue)
	if candidate.Kind() == target.Kind() && candidate.AssignableTo(target) {
		return candidate
	}
	return target
}
