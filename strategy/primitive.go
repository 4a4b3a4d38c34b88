package strategy

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/xconv/descriptor"
)

// Primitive converts values to bool, integer, floating point, complex and string kinds.
// Failed conversion yields the default value, or the zero value of the target when no default was supplied.
type Primitive struct {
	config *Config
}

// Convert converts value to primitive target
func (p *Primitive) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	rType := target.Type()
	result, err := p.convert(rType, value)
	if err == nil {
		return result.Interface(), nil
	}
	if defaultValue != nil {
		return p.config.fallback(target, value, defaultValue, err), nil
	}
	p.config.Logger.Debug("primitive conversion failed, using zero value", "target", rType.String(), "error", err)
	return reflect.Zero(rType).Interface(), nil
}

func (p *Primitive) convert(rType reflect.Type, value interface{}) (reflect.Value, error) {
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("cannot convert nil to %v", rType)
	}
	dest := reflect.New(rType).Elem()
	switch rType.Kind() {
	case reflect.String:
		dest.SetString(toString(value, p.config.DateLayout))
	case reflect.Bool:
		result, err := toBool(source)
		if err != nil {
			return dest, err
		}
		dest.SetBool(result)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result, err := toInt(source, rType.Kind() == reflect.Int32)
		if err != nil {
			return dest, err
		}
		if dest.OverflowInt(result) {
			return dest, fmt.Errorf("value %v overflows %v", result, rType)
		}
		dest.SetInt(result)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		result, err := toUint(source)
		if err != nil {
			return dest, err
		}
		if dest.OverflowUint(result) {
			return dest, fmt.Errorf("value %v overflows %v", result, rType)
		}
		dest.SetUint(result)
	case reflect.Float32, reflect.Float64:
		result, err := toFloat(source)
		if err != nil {
			return dest, err
		}
		if dest.OverflowFloat(result) {
			return dest, fmt.Errorf("value %v overflows %v", result, rType)
		}
		dest.SetFloat(result)
	case reflect.Complex64, reflect.Complex128:
		result, err := toComplex(source)
		if err != nil {
			return dest, err
		}
		dest.SetComplex(result)
	default:
		return dest, fmt.Errorf("unsupported primitive type %v", rType)
	}
	return dest, nil
}

func asTime(source reflect.Value) (time.Time, bool) {
	if !source.CanInterface() {
		return time.Time{}, false
	}
	ret, ok := source.Interface().(time.Time)
	return ret, ok
}

func toString(value interface{}, layout string) string {
	switch actual := value.(type) {
	case time.Time:
		return actual.Format(layout)
	case *time.Time:
		return actual.Format(layout)
	case []byte:
		return string(actual)
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	}
	source := indirect(value)
	if ts, ok := asTime(source); ok {
		return ts.Format(layout)
	}
	switch source.Kind() {
	case reflect.String:
		return source.String()
	case reflect.Bool:
		return strconv.FormatBool(source.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(source.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(source.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(source.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(source.Float(), 'f', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(source.Complex(), 'f', -1, 128)
	case reflect.Slice:
		switch source.Type().Elem().Kind() {
		case reflect.Uint8:
			return string(source.Bytes())
		case reflect.Int32:
			runes := make([]rune, source.Len())
			for i := range runes {
				runes[i] = rune(source.Index(i).Int())
			}
			return string(runes)
		}
	}
	return fmt.Sprint(source.Interface())
}

var boolWords = map[string]bool{
	"yes": true, "y": true, "t": true, "on": true, "ok": true,
	"no": false, "n": false, "f": false, "off": false,
}

func toBool(source reflect.Value) (bool, error) {
	switch source.Kind() {
	case reflect.Bool:
		return source.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return source.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return source.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return source.Float() != 0, nil
	case reflect.String:
		text := strings.TrimSpace(source.String())
		if result, err := strconv.ParseBool(text); err == nil {
			return result, nil
		}
		if result, ok := boolWords[strings.ToLower(text)]; ok {
			return result, nil
		}
		f, err := strconv.ParseFloat(numericText(text), 64)
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool", text)
		}
		return f != 0, nil
	}
	return false, fmt.Errorf("cannot convert %v to bool", source.Type())
}

// toInt converts source to int64, runeLike allows a single character text to be converted to its code point
func toInt(source reflect.Value, runeLike bool) (int64, error) {
	if t, ok := asTime(source); ok {
		return t.UnixMilli(), nil
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return source.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v := source.Uint()
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %v overflows int64", v)
		}
		return int64(v), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt(source.Float())
	case reflect.Bool:
		if source.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := source.String()
		result, err := parseInt(text)
		if err != nil && runeLike && utf8.RuneCountInString(text) == 1 {
			r, _ := utf8.DecodeRuneInString(text)
			return int64(r), nil
		}
		return result, err
	}
	return 0, fmt.Errorf("cannot convert %v to int", source.Type())
}

func toUint(source reflect.Value) (uint64, error) {
	switch source.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return source.Uint(), nil
	case reflect.Float32, reflect.Float64:
		v := source.Float()
		if v < 0 || math.IsNaN(v) || v > math.MaxUint64 {
			return 0, fmt.Errorf("cannot convert %v to unsigned int", v)
		}
		return uint64(v), nil
	case reflect.String:
		text := numericText(source.String())
		if result, err := parseUnsigned(text); err == nil {
			return result, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, err
		}
		if f < 0 || math.IsNaN(f) || f > math.MaxUint64 {
			return 0, fmt.Errorf("cannot convert %q to unsigned int", text)
		}
		return uint64(f), nil
	}
	v, err := toInt(source, false)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("cannot convert negative value %d to unsigned int", v)
	}
	return uint64(v), nil
}

func toFloat(source reflect.Value) (float64, error) {
	if t, ok := asTime(source); ok {
		return float64(t.UnixMilli()), nil
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(source.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(source.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return source.Float(), nil
	case reflect.Bool:
		if source.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return strconv.ParseFloat(numericText(source.String()), 64)
	}
	return 0, fmt.Errorf("cannot convert %v to float", source.Type())
}

func toComplex(source reflect.Value) (complex128, error) {
	switch source.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return source.Complex(), nil
	case reflect.String:
		return strconv.ParseComplex(strings.TrimSpace(source.String()), 128)
	}
	f, err := toFloat(source)
	if err != nil {
		return 0, err
	}
	return complex(f, 0), nil
}

func parseInt(text string) (int64, error) {
	text = numericText(text)
	if result, err := parseInteger(text); err == nil {
		return result, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return floatToInt(f)
}

// parseInteger parses decimal text, 0x prefixed text is parsed as hexadecimal
func parseInteger(text string) (int64, error) {
	if digits, sign, ok := hexDigits(text); ok {
		return strconv.ParseInt(sign+digits, 16, 64)
	}
	return strconv.ParseInt(text, 10, 64)
}

func parseUnsigned(text string) (uint64, error) {
	if digits, sign, ok := hexDigits(text); ok && sign != "-" {
		return strconv.ParseUint(digits, 16, 64)
	}
	return strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
}

// hexDigits returns digits and sign of 0x or 0X prefixed text
func hexDigits(text string) (string, string, bool) {
	sign := ""
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		sign, text = text[:1], text[1:]
	}
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return text[2:], sign, true
	}
	return "", "", false
}

func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}
	return int64(f), nil
}

// numericText trims text and removes digit grouping commas
func numericText(text string) string {
	text = strings.TrimSpace(text)
	if strings.IndexByte(text, ',') != -1 {
		text = strings.ReplaceAll(text, ",", "")
	}
	return text
}
