package descriptor

import "reflect"

// Resolve normalizes raw target type.
//
// Supported forms are nil (unknown), *Type, reflect.Type, Referencer and string type expression
// resolved with supplied types (see Parse). Any other value is taken as a sample of the target type.
// Resolve never fails: expressions that can not be resolved produce a symbolic descriptor.
func Resolve(raw interface{}, types *Types) *Type {
	switch actual := raw.(type) {
	case nil:
		return unknown
	case *Type:
		if actual == nil {
			return unknown
		}
		return actual
	case reflect.Type:
		return Of(actual)
	case Referencer:
		return RefOf(actual.TypeReference())
	case string:
		ret, err := Parse(actual, types)
		if err != nil {
			return Symbol(actual)
		}
		return ret
	}
	return Of(reflect.TypeOf(raw))
}
