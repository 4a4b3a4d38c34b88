package xconv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/enum"
	"github.com/viant/xconv/registry"
	"github.com/viant/xconv/strategy"
)

// Converter represents a composite value converter.
// It routes each conversion to a registered converter or to the first matching strategy.
type Converter struct {
	options    Options
	registry   *registry.Registry
	strategies *strategy.Set
}

// New creates a converter
func New(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.init()
	ret := &Converter{options: options}
	ret.strategies = strategy.New(&strategy.Config{
		Dispatcher:        ret,
		Introspector:      options.Introspector,
		Enums:             options.Enums,
		Logger:            options.Logger,
		DateLayout:        options.DateLayout,
		CaseSensitive:     options.CaseSensitive,
		IgnoreFieldErrors: options.IgnoreFieldErrors,
	})
	ret.registry = registry.New(ret.strategies.Builtins())
	return ret
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// Types returns type catalog used to resolve type expressions
func (c *Converter) Types() *descriptor.Types {
	return c.options.Types
}

// Enums returns enum catalog
func (c *Converter) Enums() *enum.Catalog {
	return c.options.Enums
}

// Convert converts value to target type, target can be *descriptor.Type, reflect.Type, type expression or a sample value
func (c *Converter) Convert(target, value interface{}) (interface{}, error) {
	return c.ConvertWithDefault(target, value, nil)
}

// ConvertWithDefault converts value to target type, default value is returned for nil value and absorbed failures
func (c *Converter) ConvertWithDefault(target, value, defaultValue interface{}) (interface{}, error) {
	return c.ConvertWith(target, value, defaultValue, c.options.CustomFirst)
}

// ConvertWith converts value to target type, customFirst controls whether custom converters take precedence over builtins
func (c *Converter) ConvertWith(target, value, defaultValue interface{}, customFirst bool) (interface{}, error) {
	return c.convert(descriptor.Resolve(target, c.options.Types), value, defaultValue, customFirst)
}

// Dispatch converts nested value (element, key, field)
func (c *Converter) Dispatch(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	return c.convert(target, value, defaultValue, c.options.CustomFirst)
}

// Register registers custom converter for target type, it replaces a previously registered one
func (c *Converter) Register(target interface{}, converter registry.Converter) error {
	descriptorType := descriptor.Resolve(target, c.options.Types)
	rType := descriptorType.Type()
	if rType == nil {
		return &UnresolvableClassError{Type: descriptorType.String()}
	}
	c.registry.Register(rType, converter)
	c.options.Logger.Debug("registered custom converter", "type", rType.String())
	return nil
}

// RegisterFunc registers custom conversion function for target type
func (c *Converter) RegisterFunc(target interface{}, fn func(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error)) error {
	return c.Register(target, registry.Func(fn))
}

// RegisterEnum registers enumeration constants, all constants have to share the same type
func (c *Converter) RegisterEnum(constants []interface{}, opts ...enum.Option) error {
	if err := c.options.Enums.Register(constants, opts...); err != nil {
		return err
	}
	c.options.Logger.Debug("registered enum", "type", fmt.Sprintf("%T", constants[0]), "constants", len(constants))
	return nil
}

func (c *Converter) convert(target *descriptor.Type, value, defaultValue interface{}, customFirst bool) (interface{}, error) {
	if target.IsUnknown() && defaultValue == nil {
		return value, nil
	}
	if isNil(value) {
		return defaultValue, nil
	}
	if target.IsUnknown() {
		target = descriptor.Of(reflect.TypeOf(defaultValue))
	}
	if target.IsReference() {
		reference := target
		if target = target.Unwrap(); target.IsUnknown() {
			if defaultValue == nil {
				return nil, &UnresolvedTypeError{Type: reference.String()}
			}
			target = descriptor.Of(reflect.TypeOf(defaultValue))
		}
	}
	rType := target.Type()
	if rType != nil {
		if converter, ok := c.registry.Lookup(rType, customFirst); ok {
			return converter.Convert(target, value, defaultValue)
		}
	} else {
		if defaultValue == nil {
			return nil, &UnresolvableClassError{Type: target.String()}
		}
		rType = reflect.TypeOf(defaultValue)
		target = descriptor.Of(rType)
	}
	result, err := c.convertSpecial(target, rType, value, defaultValue, customFirst)
	if err != nil || result != nil {
		return result, err
	}
	if c.options.Introspector.IsRecord(rType) {
		ret, ok, err := c.strategies.Record.TryConvert(target, value)
		if err != nil {
			return nil, err
		}
		if ok {
			return ret, nil
		}
	}
	return nil, &NoStrategyError{SourceType: reflect.TypeOf(value), Value: fmt.Sprintf("%v", value), Target: target.String()}
}

// convertSpecial applies the first matching strategy, nil result means no strategy produced a value
func (c *Converter) convertSpecial(target *descriptor.Type, rType reflect.Type, value, defaultValue interface{}, customFirst bool) (interface{}, error) {
	category := descriptor.Classify(rType, c.options.Enums.IsEnum)
	switch category {
	case descriptor.CategoryCollection:
		return c.strategies.Collection.Convert(target, value, defaultValue)
	case descriptor.CategoryMap:
		return c.strategies.Map.Convert(target, value, defaultValue)
	}
	if reflect.TypeOf(value).AssignableTo(rType) {
		return value, nil
	}
	switch category {
	case descriptor.CategoryPrimitive:
		return c.strategies.Primitive.Convert(target, value, defaultValue)
	case descriptor.CategoryNumber:
		return c.strategies.Number.Convert(target, value, defaultValue)
	case descriptor.CategoryEnum:
		return c.strategies.Enum.Convert(target, value, defaultValue)
	case descriptor.CategoryArray:
		return c.strategies.Array.Convert(target, value, defaultValue)
	case descriptor.CategoryPointer:
		return c.box(rType, value, defaultValue, customFirst)
	}
	return nil, nil
}

// box converts value to pointer element type and returns a pointer to the converted value
func (c *Converter) box(rType reflect.Type, value, defaultValue interface{}, customFirst bool) (interface{}, error) {
	var elemDefault interface{}
	if defaultValue != nil {
		if rValue := reflect.ValueOf(defaultValue); rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
			elemDefault = rValue.Elem().Interface()
		}
	}
	elem, err := c.convert(descriptor.Of(rType.Elem()), value, elemDefault, customFirst)
	if err != nil || elem == nil {
		return nil, err
	}
	ret := reflect.New(rType.Elem())
	source := reflect.ValueOf(elem)
	switch {
	case source.Type().AssignableTo(rType.Elem()):
		ret.Elem().Set(source)
	case source.Kind() == rType.Elem().Kind() && source.Type().ConvertibleTo(rType.Elem()):
		ret.Elem().Set(source.Convert(rType.Elem()))
	default:
		return nil, nil
	}
	return ret.Interface(), nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	return rValue.Kind() == reflect.Ptr && rValue.IsNil()
}
