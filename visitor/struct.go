package visitor

import (
	"fmt"

	"github.com/viant/xconv/introspect"
)

// StructVisitorOf creates a visitor over record fields of a struct or pointer to struct value, keyed by go field name
func StructVisitorOf(value interface{}, introspector introspect.FieldIntrospector) (Visitor[string, interface{}], error) {
	ptr, rType, ok := introspect.StructPointer(value)
	if !ok {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	fields := introspector.Fields(rType)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for _, field := range fields {
			continueVisit, err := f(field.Name, field.Interface(ptr))
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
