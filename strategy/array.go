package strategy

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/visitor"
)

// Array converts values to fixed size arrays, elements past array length are dropped.
// Maps and records are not widened, they yield the default value.
type Array struct {
	config *Config
}

// Convert converts value elements to target array
func (a *Array) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	rType := target.Type()
	dest := reflect.New(rType).Elem()
	elemType := rType.Elem()
	source := indirect(value)
	if source.Kind() == reflect.String {
		switch elemType.Kind() {
		case reflect.Uint8:
			data := source.String()
			for i := 0; i < dest.Len() && i < len(data); i++ {
				dest.Index(i).SetUint(uint64(data[i]))
			}
			return dest.Interface(), nil
		case reflect.Int32:
			runes := []rune(source.String())
			for i := 0; i < dest.Len() && i < len(runes); i++ {
				dest.Index(i).SetInt(int64(runes[i]))
			}
			return dest.Interface(), nil
		}
	}
	if !a.config.widenable(source) {
		return a.config.fallback(target, value, defaultValue, fmt.Errorf("cannot convert %T to %v", value, rType)), nil
	}
	elem := descriptor.Of(elemType)
	err := visitor.ElementsOf(value)(func(index int, element interface{}) (bool, error) {
		if index >= dest.Len() {
			return false, nil
		}
		converted, err := a.config.Dispatcher.Dispatch(elem, element, nil)
		if err != nil {
			return false, fmt.Errorf("failed to convert element %d: %w", index, err)
		}
		a.config.set(dest.Index(index), converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dest.Interface(), nil
}
