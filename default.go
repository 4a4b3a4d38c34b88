package xconv

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/enum"
	"github.com/viant/xconv/registry"
)

var (
	defaultConverter *Converter
	defaultOnce      sync.Once
)

// Default returns process-wide converter with default options
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConverter = New()
	})
	return defaultConverter
}

// Convert converts value to target type with the default converter
func Convert(target, value interface{}) (interface{}, error) {
	return Default().Convert(target, value)
}

// ConvertWithDefault converts value to target type with the default converter
func ConvertWithDefault(target, value, defaultValue interface{}) (interface{}, error) {
	return Default().ConvertWithDefault(target, value, defaultValue)
}

// ConvertWith converts value to target type with the default converter
func ConvertWith(target, value, defaultValue interface{}, customFirst bool) (interface{}, error) {
	return Default().ConvertWith(target, value, defaultValue, customFirst)
}

// Register registers custom converter with the default converter
func Register(target interface{}, converter registry.Converter) error {
	return Default().Register(target, converter)
}

// RegisterEnum registers enumeration constants with the default converter
func RegisterEnum[T comparable](constants []T, opts ...enum.Option) error {
	return enum.Register(Default().Enums(), constants, opts...)
}

// To converts value to T with supplied converter (default converter when nil), def is used as default value
func To[T any](c *Converter, value interface{}, def T) (T, error) {
	if c == nil {
		c = Default()
	}
	var defaultValue interface{}
	if !isNil(def) {
		defaultValue = def
	}
	result, err := c.ConvertWithDefault(descriptor.For[T](), value, defaultValue)
	if err != nil || result == nil {
		return def, err
	}
	if ret, ok := result.(T); ok {
		return ret, nil
	}
	rValue := reflect.ValueOf(result)
	targetType := reflect.TypeOf((*T)(nil)).Elem()
	if rValue.Type().ConvertibleTo(targetType) {
		return rValue.Convert(targetType).Interface().(T), nil
	}
	return def, &NoStrategyError{SourceType: rValue.Type(), Value: fmt.Sprintf("%v", result), Target: targetType.String()}
}
