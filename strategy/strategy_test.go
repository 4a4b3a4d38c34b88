package strategy

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/enum"
)

// testDispatcher routes nested values to strategies by target category
type testDispatcher struct {
	set *Set
}

func (d *testDispatcher) Dispatch(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	if value == nil {
		return defaultValue, nil
	}
	rType := target.Type()
	if converter, ok := d.set.Builtins()[rType]; ok {
		return converter.Convert(target, value, defaultValue)
	}
	switch descriptor.Classify(rType, d.set.Enum.config.Enums.IsEnum) {
	case descriptor.CategoryCollection:
		return d.set.Collection.Convert(target, value, defaultValue)
	case descriptor.CategoryMap:
		return d.set.Map.Convert(target, value, defaultValue)
	}
	if reflect.TypeOf(value).AssignableTo(rType) {
		return value, nil
	}
	switch descriptor.Classify(rType, d.set.Enum.config.Enums.IsEnum) {
	case descriptor.CategoryPrimitive:
		return d.set.Primitive.Convert(target, value, defaultValue)
	case descriptor.CategoryNumber:
		return d.set.Number.Convert(target, value, defaultValue)
	case descriptor.CategoryEnum:
		return d.set.Enum.Convert(target, value, defaultValue)
	case descriptor.CategoryArray:
		return d.set.Array.Convert(target, value, defaultValue)
	}
	if ret, ok, err := d.set.Record.TryConvert(target, value); ok || err != nil {
		return ret, err
	}
	return nil, fmt.Errorf("unsupported conversion %T to %v", value, rType)
}

func newTestSet(enums *enum.Catalog) *Set {
	config := &Config{Enums: enums}
	ret := New(config)
	config.Dispatcher = &testDispatcher{set: ret}
	return ret
}
