package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a typed slice visitor
func SliceVisitorOf[E any](value interface{}) (Visitor[int, E], error) {
	slice, ok := value.([]E)
	if !ok {
		var elem E
		return nil, fmt.Errorf("expected []%T, got %T", elem, value)
	}
	return typedSliceVisitor(slice), nil
}

// AnySliceVisitorOf creates a visitor for any slice or array value
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return typedSliceVisitor(actual), nil
	case []string:
		return anySliceVisitor(actual), nil
	case []int:
		return anySliceVisitor(actual), nil
	case []int64:
		return anySliceVisitor(actual), nil
	case []float64:
		return anySliceVisitor(actual), nil
	case []bool:
		return anySliceVisitor(actual), nil
	case []map[string]interface{}:
		return anySliceVisitor(actual), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			continueVisit, err := f(i, rValue.Index(i).Interface())
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

func typedSliceVisitor[E any](slice []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

func anySliceVisitor[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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
