package visitor

import "reflect"

// SingleVisitorOf creates a visitor with one element
func SingleVisitorOf(value interface{}) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		_, err := f(0, value)
		return err
	}
}

// ElementsOf creates an element visitor for supplied source: slices and arrays are visited by index,
// text as comma separated items, any other value as a single element
func ElementsOf(value interface{}) Visitor[int, interface{}] {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
		rValue = rValue.Elem()
	}
	switch rValue.Kind() {
	case reflect.String:
		return TextVisitorOf(rValue.String())
	case reflect.Slice, reflect.Array:
		value = rValue.Interface()
		if ret, err := AnySliceVisitorOf(value); err == nil {
			return ret
		}
	}
	return SingleVisitorOf(value)
}

// Len returns number of elements visited by ElementsOf, -1 if unknown
func Len(value interface{}) int {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
		rValue = rValue.Elem()
	}
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		return rValue.Len()
	case reflect.String:
		return -1
	}
	return 1
}
