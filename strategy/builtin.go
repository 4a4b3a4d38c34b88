package strategy

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/xconv/descriptor"
	"github.com/viant/xconv/registry"
)

var (
	stringType     = reflect.TypeOf("")
	bytesType      = reflect.TypeOf([]byte{})
	durationType   = reflect.TypeOf(time.Duration(0))
	urlType        = reflect.TypeOf(url.URL{})
	urlPtrType     = reflect.TypeOf(&url.URL{})
	jsonNumberType = reflect.TypeOf(json.Number(""))
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// builtin converts values to common library types
type builtin struct {
	config     *Config
	collection *Collection
}

// Builtins returns converters for string, []byte, time.Time, time.Duration, url.URL, *url.URL and json.Number
func (s *Set) Builtins() map[reflect.Type]registry.Converter {
	return map[reflect.Type]registry.Converter{
		stringType:     registry.Func(s.builtin.toString),
		bytesType:      registry.Func(s.builtin.toBytes),
		timeType:       registry.Func(s.builtin.toTime),
		durationType:   registry.Func(s.builtin.toDuration),
		urlType:        registry.Func(s.builtin.toURL),
		urlPtrType:     registry.Func(s.builtin.toURL),
		jsonNumberType: registry.Func(s.builtin.toJSONNumber),
	}
}

func (b *builtin) toString(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	if text, ok := value.(string); ok {
		return text, nil
	}
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return defaultValue, nil
	}
	return toString(value, b.config.DateLayout), nil
}

func (b *builtin) toBytes(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case []byte:
		return actual, nil
	case string:
		return []byte(actual), nil
	case *string:
		if actual != nil {
			return []byte(*actual), nil
		}
	case json.RawMessage:
		return []byte(actual), nil
	}
	return b.collection.Convert(target, value, defaultValue)
}

func (b *builtin) toTime(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return defaultValue, nil
	}
	if ts, ok := asTime(source); ok {
		return ts, nil
	}
	ts, err := b.parseTime(source)
	if err != nil {
		return b.config.fallback(target, value, defaultValue, err), nil
	}
	return ts, nil
}

func (b *builtin) parseTime(source reflect.Value) (time.Time, error) {
	switch source.Kind() {
	case reflect.String:
		literal := strings.TrimSpace(source.String())
		ts, err := time.ParseInLocation(b.config.DateLayout, literal, time.UTC)
		if err == nil {
			return ts, nil
		}
		for _, layout := range timeLayouts {
			if ts, err = time.ParseInLocation(layout, literal, time.UTC); err == nil {
				return ts, nil
			}
		}
		if unix, intErr := strconv.ParseInt(literal, 10, 64); intErr == nil {
			return unixTime(unix), nil
		}
		return time.Time{}, fmt.Errorf("cannot parse time %q: %w", literal, err)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return unixTime(source.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unixTime(int64(source.Uint())), nil
	case reflect.Float32, reflect.Float64:
		seconds := int64(source.Float())
		nanos := int64((source.Float() - float64(seconds)) * 1e9)
		return time.Unix(seconds, nanos), nil
	}
	return time.Time{}, fmt.Errorf("cannot convert %v to time.Time", source.Type())
}

// unixTime interprets value as unix seconds, milliseconds or nanoseconds depending on its magnitude
func unixTime(value int64) time.Time {
	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	switch {
	case magnitude > 1e16:
		return time.Unix(0, value)
	case magnitude > 1e11:
		return time.UnixMilli(value)
	}
	return time.Unix(value, 0)
}

func (b *builtin) toDuration(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	if duration, ok := value.(time.Duration); ok {
		return duration, nil
	}
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return defaultValue, nil
	}
	if source.Kind() == reflect.String {
		literal := strings.TrimSpace(source.String())
		if duration, err := time.ParseDuration(literal); err == nil {
			return duration, nil
		}
	}
	nanos, err := toInt(source, false)
	if err != nil {
		return b.config.fallback(target, value, defaultValue, err), nil
	}
	return time.Duration(nanos), nil
}

func (b *builtin) toURL(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	isPtr := target.Type() == urlPtrType
	var ret *url.URL
	switch actual := value.(type) {
	case url.URL:
		ret = &actual
	case *url.URL:
		if actual == nil {
			return defaultValue, nil
		}
		ret = actual
	default:
		source := indirect(value)
		if !source.IsValid() || source.Kind() == reflect.Ptr {
			return defaultValue, nil
		}
		parsed, err := url.Parse(strings.TrimSpace(toString(source.Interface(), b.config.DateLayout)))
		if err != nil {
			return b.config.fallback(target, value, defaultValue, err), nil
		}
		ret = parsed
	}
	if isPtr {
		return ret, nil
	}
	return *ret, nil
}

func (b *builtin) toJSONNumber(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	if number, ok := value.(json.Number); ok {
		return number, nil
	}
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return defaultValue, nil
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return json.Number(toString(source.Interface(), b.config.DateLayout)), nil
	case reflect.String:
		literal := numericText(source.String())
		if _, err := strconv.ParseFloat(literal, 64); err != nil {
			return b.config.fallback(target, value, defaultValue, err), nil
		}
		return json.Number(literal), nil
	}
	return b.config.fallback(target, value, defaultValue, fmt.Errorf("cannot convert %v to json.Number", source.Type())), nil
}
