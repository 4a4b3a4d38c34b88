package visitor

import (
	"fmt"
	"reflect"
)

// MapVisitorOf creates a typed map visitor
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	return func(f func(key K, element E) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitorOf creates a visitor for any map value
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return anyMapVisitor(actual), nil
	case map[string]string:
		return anyMapVisitor(actual), nil
	case map[string]int:
		return anyMapVisitor(actual), nil
	case map[string]bool:
		return anyMapVisitor(actual), nil
	case map[interface{}]interface{}:
		return MapVisitorOf(actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key any, element any) (bool, error)) error {
		iter := rValue.MapRange()
		for iter.Next() {
			continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

func anyMapVisitor[K comparable, E any](aMap map[K]E) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
