package strategy

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/visitor"
)

// Map converts map and record values to maps, keys and values are converted to target key and value types
type Map struct {
	config *Config
}

// Convert converts value to target map, unsupported source yields the default
func (m *Map) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	rType := containerType(target.Type(), defaultValue)
	visit := m.entries(value)
	if visit == nil {
		return m.config.fallback(target, value, defaultValue, fmt.Errorf("unsupported map source %T", value)), nil
	}
	key, elem := descriptor.Of(rType.Key()), descriptor.Of(rType.Elem())
	dest := reflect.MakeMap(rType)
	err := visit(func(k, v interface{}) (bool, error) {
		convertedKey, err := m.config.Dispatcher.Dispatch(key, k, nil)
		if err != nil {
			return false, fmt.Errorf("failed to convert map key %v: %w", k, err)
		}
		if convertedKey == nil {
			return true, nil
		}
		convertedValue, err := m.config.Dispatcher.Dispatch(elem, v, nil)
		if err != nil {
			return false, fmt.Errorf("failed to convert map value for key %v: %w", k, err)
		}
		destKey := reflect.New(rType.Key()).Elem()
		m.config.set(destKey, convertedKey)
		destValue := reflect.New(rType.Elem()).Elem()
		m.config.set(destValue, convertedValue)
		dest.SetMapIndex(destKey, destValue)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dest.Interface(), nil
}

func (m *Map) entries(value interface{}) visitor.Visitor[any, any] {
	source := indirect(value)
	switch source.Kind() {
	case reflect.Map:
		ret, _ := visitor.AnyMapVisitorOf(source.Interface())
		return ret
	case reflect.Struct:
		if !m.config.Introspector.IsRecord(source.Type()) {
			return nil
		}
		fields, err := visitor.StructVisitorOf(source.Interface(), m.config.Introspector)
		if err != nil {
			return nil
		}
		return func(f func(key any, element any) (bool, error)) error {
			return fields(func(key string, element interface{}) (bool, error) {
				return f(key, element)
			})
		}
	}
	return nil
}
