package introspect

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Field represents a named, settable struct field
type Field struct {
	//Name go field name
	Name string
	//Names lookup names: go field name followed by tag defined names
	Names []string
	//Type field type
	Type reflect.Type
	//TimeLayout time layout defined with format tag
	TimeLayout string
	path       []*xunsafe.Field
}

// Pointer returns field pointer for supplied struct pointer
func (f *Field) Pointer(structPtr unsafe.Pointer) unsafe.Pointer {
	ptr := structPtr
	for _, xField := range f.path {
		ptr = xField.Pointer(ptr)
	}
	return ptr
}

// Value returns addressable field value
func (f *Field) Value(structPtr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(f.Type, f.Pointer(structPtr)).Elem()
}

// Interface returns field value
func (f *Field) Interface(structPtr unsafe.Pointer) interface{} {
	return f.Value(structPtr).Interface()
}

// Set sets field value, value has to be assignable to field type
func (f *Field) Set(structPtr unsafe.Pointer, value reflect.Value) {
	f.Value(structPtr).Set(value)
}

// NewField creates a field for supplied struct field, embedded fields are reached through parent path
func NewField(field reflect.StructField, parent []*xunsafe.Field, names ...string) *Field {
	path := make([]*xunsafe.Field, len(parent), len(parent)+1)
	copy(path, parent)
	path = append(path, xunsafe.NewField(field))
	return &Field{
		Name:  field.Name,
		Names: append([]string{field.Name}, names...),
		Type:  field.Type,
		path:  path,
	}
}

// StructPointer returns struct pointer for supplied struct or pointer to struct value
func StructPointer(value interface{}) (unsafe.Pointer, reflect.Type, bool) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			return nil, nil, false
		}
		return xunsafe.AsPointer(value), rValue.Type().Elem(), true
	case reflect.Struct:
		holder := reflect.New(rValue.Type())
		holder.Elem().Set(rValue)
		return unsafe.Pointer(holder.Pointer()), rValue.Type(), true
	}
	return nil, nil, false
}
