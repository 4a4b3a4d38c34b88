package introspect

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

var timeType = reflect.TypeOf(time.Time{})

type (
	// FieldIntrospector provides structured record metadata
	FieldIntrospector interface {
		//IsRecord returns true if type is a struct (or pointer to struct) with settable named fields
		IsRecord(rType reflect.Type) bool
		//Fields returns record settable fields
		Fields(rType reflect.Type) []*Field
	}

	// MarkerProvider provides field presence marker
	MarkerProvider interface {
		Marker(rType reflect.Type) *Marker
	}

	// Introspector represents xunsafe based field introspector
	Introspector struct {
		tagName          string
		accessUnexported bool
		cache            sync.Map // map[reflect.Type]*record
	}

	// Option represents introspector option
	Option func(i *Introspector)

	record struct {
		fields []*Field
		marker *Marker
	}
)

// WithTagName sets struct tag used to resolve field names
func WithTagName(name string) Option {
	return func(i *Introspector) {
		i.tagName = name
	}
}

// WithUnexported enables unexported field access
func WithUnexported(flag bool) Option {
	return func(i *Introspector) {
		i.accessUnexported = flag
	}
}

// IsRecord returns true for struct types with at least one accessible field
func (i *Introspector) IsRecord(rType reflect.Type) bool {
	rType = ensureStruct(rType)
	if rType == nil || rType == timeType {
		return false
	}
	return len(i.record(rType).fields) > 0
}

// Fields returns struct fields
func (i *Introspector) Fields(rType reflect.Type) []*Field {
	if rType = ensureStruct(rType); rType == nil {
		return nil
	}
	return i.record(rType).fields
}

// Marker returns presence marker or nil
func (i *Introspector) Marker(rType reflect.Type) *Marker {
	if rType = ensureStruct(rType); rType == nil {
		return nil
	}
	return i.record(rType).marker
}

func (i *Introspector) record(rType reflect.Type) *record {
	if v, ok := i.cache.Load(rType); ok {
		return v.(*record)
	}
	ret := &record{}
	i.buildFields(rType, ret, nil)
	ret.marker, _ = NewMarker(rType)
	v, _ := i.cache.LoadOrStore(rType, ret)
	return v.(*record)
}

func (i *Introspector) buildFields(rType reflect.Type, rec *record, parent []*xunsafe.Field) {
	for j := 0; j < rType.NumField(); j++ {
		field := rType.Field(j)
		if IsSetMarker(field.Tag) {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			path := append(append([]*xunsafe.Field{}, parent...), xunsafe.NewField(field))
			i.buildFields(field.Type, rec, path)
			continue
		}
		if !field.IsExported() && !i.accessUnexported {
			continue
		}
		var names []string
		if tag := field.Tag.Get(i.tagName); tag != "" {
			name := tag
			if index := strings.Index(tag, ","); index != -1 {
				name = tag[:index]
			}
			if name == "-" {
				continue
			}
			if name != "" {
				names = append(names, name)
			}
		}
		formatTag, _ := format.Parse(field.Tag)
		if formatTag != nil {
			if formatTag.Ignore {
				continue
			}
			if formatTag.Name != "" {
				names = append(names, formatTag.Name)
			}
		}
		aField := NewField(field, parent, names...)
		if formatTag != nil {
			aField.TimeLayout = formatTag.TimeLayout
			if aField.TimeLayout == "" && formatTag.DateFormat != "" {
				aField.TimeLayout = ftime.DateFormatToTimeLayout(formatTag.DateFormat)
			}
		}
		rec.fields = append(rec.fields, aField)
	}
}

// New creates an introspector, json tag is used by default
func New(opts ...Option) *Introspector {
	ret := &Introspector{tagName: "json"}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func ensureStruct(rType reflect.Type) reflect.Type {
	if rType == nil {
		return nil
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil
	}
	return rType
}
