// Package xconv provides a composite runtime value converter.
//
// A conversion target is described with a descriptor.Type, a reflect.Type, a type expression
// such as "[]int" or "map[string]time.Time", or a sample value. Each conversion is routed to a
// registered converter, then to the first matching strategy: collection, map, identity,
// primitive, number, enum, array and pointer boxing, and finally to record population.
//
// Usage:
//
//	ids, err := xconv.To[[]int](nil, "1,2,3", nil)
//	account, err := xconv.Convert(reflect.TypeOf(&Account{}), map[string]interface{}{"id": "7"})
//
// Failures of an individual strategy (malformed number, unmatched enum name) are absorbed
// and the supplied default value is returned instead.
package xconv
