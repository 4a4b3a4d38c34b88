package strategy

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/visitor"
)

var runesType = reflect.TypeOf([]rune{})

// Collection converts values to slices. A slice or array source is converted element by element,
// text is split on commas (or into runes for a rune slice) and a scalar value becomes a single element slice.
// Maps and records are not widened, they yield the default value.
type Collection struct {
	config *Config
}

// Convert converts value to target slice, default value type is used when it is a more specific slice type
func (c *Collection) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	rType := containerType(target.Type(), defaultValue)
	elemType := rType.Elem()
	source := indirect(value)
	if source.Kind() == reflect.String {
		switch {
		case bytesType.ConvertibleTo(rType):
			return reflect.ValueOf([]byte(source.String())).Convert(rType).Interface(), nil
		case runesType.ConvertibleTo(rType):
			return reflect.ValueOf([]rune(source.String())).Convert(rType).Interface(), nil
		}
	}
	if !c.config.widenable(source) {
		return c.config.fallback(target, value, defaultValue, fmt.Errorf("cannot convert %T to %v", value, rType)), nil
	}
	size := visitor.Len(value)
	if size < 0 {
		size = 0
	}
	dest := reflect.MakeSlice(rType, 0, size)
	elem := descriptor.Of(elemType)
	err := visitor.ElementsOf(value)(func(index int, element interface{}) (bool, error) {
		converted, err := c.config.Dispatcher.Dispatch(elem, element, nil)
		if err != nil {
			return false, fmt.Errorf("failed to convert element %d: %w", index, err)
		}
		item := reflect.New(elemType).Elem()
		c.config.set(item, converted)
		dest = reflect.Append(dest, item)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dest.Interface(), nil
}
