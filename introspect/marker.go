package introspect

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"
	//PresenceMarkerTag defines presence marker tag
	PresenceMarkerTag = "presenceMarker"

	presenceTagFragment = "presence=true"
)

// Marker represents field presence marker, a holder struct with a bool flag per marked field
type Marker struct {
	holder *xunsafe.Field
	isPtr  bool
	flags  map[string]*xunsafe.Field
}

// IsSetMarker returns true if tag defines presence marker holder
func IsSetMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(SetMarkerTag); ok {
		return true
	}
	if _, ok := tag.Lookup(PresenceMarkerTag); ok {
		return true
	}
	return strings.Contains(string(tag), presenceTagFragment)
}

// Has returns true if marker has a flag for supplied field
func (m *Marker) Has(name string) bool {
	_, ok := m.flags[name]
	return ok
}

// Set flags field as set, nil pointer holder gets allocated
func (m *Marker) Set(structPtr unsafe.Pointer, name string) error {
	flag, ok := m.flags[name]
	if !ok {
		return fmt.Errorf("marker field %v was missing", name)
	}
	flag.SetBool(m.holderPointer(structPtr, true), true)
	return nil
}

// IsSet returns true if field was flagged
func (m *Marker) IsSet(structPtr unsafe.Pointer, name string) bool {
	flag, ok := m.flags[name]
	if !ok {
		return false
	}
	holderPtr := m.holderPointer(structPtr, false)
	if holderPtr == nil {
		return false
	}
	return flag.Bool(holderPtr)
}

func (m *Marker) holderPointer(structPtr unsafe.Pointer, allocate bool) unsafe.Pointer {
	if !m.isPtr {
		return m.holder.Pointer(structPtr)
	}
	if m.holder.IsNil(structPtr) {
		if !allocate {
			return nil
		}
		holder := reflect.NewAt(m.holder.Type, m.holder.Pointer(structPtr)).Elem()
		holder.Set(reflect.New(m.holder.Type.Elem()))
	}
	return m.holder.ValuePointer(structPtr)
}

// NewMarker returns struct presence marker or nil when struct does not define marker holder
func NewMarker(rType reflect.Type) (*Marker, error) {
	if rType = ensureStruct(rType); rType == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	var ret *Marker
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !IsSetMarker(field.Tag) {
			continue
		}
		holderType := field.Type
		isPtr := holderType.Kind() == reflect.Ptr
		if isPtr {
			holderType = holderType.Elem()
		}
		if holderType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("invalid marker holder %v type: %v", field.Name, field.Type)
		}
		ret = &Marker{holder: xunsafe.NewField(field), isPtr: isPtr, flags: map[string]*xunsafe.Field{}}
		for j := 0; j < holderType.NumField(); j++ {
			flag := holderType.Field(j)
			if flag.Type.Kind() != reflect.Bool {
				continue
			}
			if _, ok := rType.FieldByName(flag.Name); !ok {
				return nil, fmt.Errorf("marker field: '%v' does not have corresponding struct field", flag.Name)
			}
			ret.flags[flag.Name] = xunsafe.NewField(flag)
		}
		break
	}
	return ret, nil
}
