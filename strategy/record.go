package strategy

import (
	"fmt"
	"reflect"
	"sync"
	"time"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"golang.org/x/text/cases"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/introspect"
	"github.com/viant/xconv/visitor"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
)

type (
	// Record populates struct (or pointer to struct) targets from maps and other records.
	// Source keys are matched with field names and tag names, case insensitively unless configured otherwise.
	Record struct {
		config  *Config
		indexes sync.Map // map[reflect.Type]*fieldIndex
	}

	fieldIndex struct {
		exact  map[string]*introspect.Field
		folded map[string]*introspect.Field
	}
)

// Convert converts value to target record, unsupported source yields the default
func (r *Record) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	ret, ok, err := r.TryConvert(target, value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.config.fallback(target, value, defaultValue, fmt.Errorf("unsupported record source %T", value)), nil
	}
	return ret, nil
}

// TryConvert populates a new target record from value, returns false when value is neither map nor record
func (r *Record) TryConvert(target *descriptor.Type, value interface{}) (interface{}, bool, error) {
	rType := target.Type()
	if rType == nil {
		return nil, false, nil
	}
	isPtr := rType.Kind() == reflect.Ptr
	structType := rType
	if isPtr {
		structType = rType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, false, nil
	}
	visit := r.entries(value)
	if visit == nil {
		return nil, false, nil
	}
	dest := reflect.New(structType)
	ptr := unsafe.Pointer(dest.Pointer())
	index := r.index(structType)
	var marker *introspect.Marker
	if provider, ok := r.config.Introspector.(introspect.MarkerProvider); ok {
		marker = provider.Marker(structType)
	}
	err := visit(func(key string, element interface{}) (bool, error) {
		field := index.lookup(key, r.config.CaseSensitive)
		if field == nil || element == nil {
			return true, nil
		}
		if err := r.setField(ptr, field, element); err != nil {
			if !r.config.IgnoreFieldErrors {
				return false, err
			}
			r.config.Logger.Debug("ignored field conversion error", "type", structType.String(), "field", field.Name, "error", err)
			return true, nil
		}
		if marker != nil && marker.Has(field.Name) {
			if err := marker.Set(ptr, field.Name); err != nil {
				r.config.Logger.Debug("failed to mark field as set", "type", structType.String(), "field", field.Name, "error", err)
			}
		}
		return true, nil
	})
	if err != nil {
		return nil, false, err
	}
	if isPtr {
		return dest.Interface(), true, nil
	}
	return dest.Elem().Interface(), true, nil
}

func (r *Record) setField(ptr unsafe.Pointer, field *introspect.Field, value interface{}) error {
	if field.TimeLayout != "" && (field.Type == timeType || field.Type == timePtrType) {
		if literal, ok := value.(string); ok {
			if ts, err := time.ParseInLocation(field.TimeLayout, literal, time.UTC); err == nil {
				if field.Type == timePtrType {
					field.Set(ptr, reflect.ValueOf(&ts))
				} else {
					field.Set(ptr, reflect.ValueOf(ts))
				}
				return nil
			}
		}
	}
	converted, err := r.config.Dispatcher.Dispatch(descriptor.Of(field.Type), value, nil)
	if err != nil {
		return fmt.Errorf("failed to convert field %v: %w", field.Name, err)
	}
	if converted == nil {
		return nil
	}
	return assign(field.Value(ptr), converted)
}

func (r *Record) entries(value interface{}) visitor.Visitor[string, interface{}] {
	source := indirect(value)
	switch source.Kind() {
	case reflect.Map:
		entries, err := visitor.AnyMapVisitorOf(source.Interface())
		if err != nil {
			return nil
		}
		return func(f func(key string, element interface{}) (bool, error)) error {
			return entries(func(key any, element any) (bool, error) {
				if literal, ok := key.(string); ok {
					return f(literal, element)
				}
				return f(fmt.Sprint(key), element)
			})
		}
	case reflect.Struct:
		if !r.config.Introspector.IsRecord(source.Type()) {
			return nil
		}
		ret, err := visitor.StructVisitorOf(source.Interface(), r.config.Introspector)
		if err != nil {
			return nil
		}
		return ret
	}
	return nil
}

func (r *Record) index(rType reflect.Type) *fieldIndex {
	if v, ok := r.indexes.Load(rType); ok {
		return v.(*fieldIndex)
	}
	ret := &fieldIndex{exact: map[string]*introspect.Field{}, folded: map[string]*introspect.Field{}}
	for _, field := range r.config.Introspector.Fields(rType) {
		for _, name := range field.Names {
			if _, ok := ret.exact[name]; !ok {
				ret.exact[name] = field
			}
			key := normalizeName(name)
			if _, ok := ret.folded[key]; !ok {
				ret.folded[key] = field
			}
		}
	}
	v, _ := r.indexes.LoadOrStore(rType, ret)
	return v.(*fieldIndex)
}

func (i *fieldIndex) lookup(name string, caseSensitive bool) *introspect.Field {
	if field, ok := i.exact[name]; ok {
		return field
	}
	if caseSensitive {
		return nil
	}
	return i.folded[normalizeName(name)]
}

// normalizeName maps name in any detected case format (snake, kebab, camel) to a case folded camel form
func normalizeName(name string) string {
	if caseFormat := text.DetectCaseFormat(name); caseFormat.IsDefined() {
		name = caseFormat.Format(name, text.CaseFormatUpperCamel)
	}
	return cases.Fold().String(name)
}
