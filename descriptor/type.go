package descriptor

import (
	"reflect"
)

// Kind represents a type descriptor variant
type Kind int

const (
	//KindUnknown target type was not specified
	KindUnknown Kind = iota
	//KindConcrete target type is backed by reflect.Type
	KindConcrete
	//KindSymbolic target type is known by name only
	KindSymbolic
	//KindReference target type wraps another descriptor
	KindReference
)

type (
	//Type represents a conversion target type
	Type struct {
		kind  Kind
		name  string
		rType reflect.Type
		ref   *Type
	}

	//Referencer represents a typed reference wrapper
	Referencer interface {
		TypeReference() *Type
	}
)

var unknown = &Type{kind: KindUnknown}

// Unknown returns unspecified target type
func Unknown() *Type {
	return unknown
}

// Of returns a concrete type descriptor
func Of(rType reflect.Type) *Type {
	if rType == nil {
		return unknown
	}
	return &Type{kind: KindConcrete, rType: rType}
}

// For returns a concrete type descriptor for T, T can be an interface type
func For[T any]() *Type {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

// Symbol returns a type descriptor known by name only
func Symbol(name string) *Type {
	if name == "" {
		return unknown
	}
	return &Type{kind: KindSymbolic, name: name}
}

// Ref returns a reference wrapper for T
func Ref[T any]() *Type {
	return RefOf(For[T]())
}

// RefOf returns a reference wrapper for supplied type
func RefOf(t *Type) *Type {
	if t == nil {
		t = unknown
	}
	return &Type{kind: KindReference, ref: t}
}

// Kind returns descriptor kind
func (t *Type) Kind() Kind {
	if t == nil {
		return KindUnknown
	}
	return t.kind
}

// IsUnknown returns true if type was not specified
func (t *Type) IsUnknown() bool {
	return t.Kind() == KindUnknown
}

// IsReference returns true for reference wrapper
func (t *Type) IsReference() bool {
	return t.Kind() == KindReference
}

// Unwrap returns referenced descriptor, non reference descriptors are returned as is
func (t *Type) Unwrap() *Type {
	ret := t
	for ret.IsReference() {
		ret = ret.ref
	}
	if ret == nil {
		return unknown
	}
	return ret
}

// Type returns concrete reflect type or nil
func (t *Type) Type() reflect.Type {
	actual := t.Unwrap()
	if actual.kind != KindConcrete {
		return nil
	}
	return actual.rType
}

// Elem returns element type descriptor of concrete container/pointer type
func (t *Type) Elem() *Type {
	rType := t.Type()
	if rType == nil {
		return unknown
	}
	switch rType.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Ptr, reflect.Chan:
		return Of(rType.Elem())
	}
	return unknown
}

// Key returns map key type descriptor
func (t *Type) Key() *Type {
	rType := t.Type()
	if rType == nil || rType.Kind() != reflect.Map {
		return unknown
	}
	return Of(rType.Key())
}

// String returns type name
func (t *Type) String() string {
	switch t.Kind() {
	case KindConcrete:
		return t.rType.String()
	case KindSymbolic:
		return t.name
	case KindReference:
		return "ref(" + t.ref.String() + ")"
	}
	return "?"
}
