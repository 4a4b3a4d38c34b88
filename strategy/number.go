package strategy

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/viant/xconv/descriptor"
)

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})
)

// Number converts values to arbitrary precision numbers (big.Int, big.Float, big.Rat)
// and to pointers of numeric kinds. Malformed input yields the default value.
type Number struct {
	config    *Config
	primitive *Primitive
}

// Convert converts value to number target
func (n *Number) Convert(target *descriptor.Type, value, defaultValue interface{}) (interface{}, error) {
	result, err := n.convert(target.Type(), value)
	if err != nil {
		return n.config.fallback(target, value, defaultValue, err), nil
	}
	return result, nil
}

func (n *Number) convert(rType reflect.Type, value interface{}) (interface{}, error) {
	isPtr := rType.Kind() == reflect.Ptr
	baseType := rType
	if isPtr {
		baseType = rType.Elem()
	}
	source := indirect(value)
	if !source.IsValid() || source.Kind() == reflect.Ptr {
		return nil, fmt.Errorf("cannot convert nil to %v", rType)
	}
	switch baseType {
	case bigIntType:
		result, err := toBigInt(source)
		if err != nil || isPtr {
			return result, err
		}
		return *result, nil
	case bigFloatType:
		result, err := toBigFloat(source)
		if err != nil || isPtr {
			return result, err
		}
		return *result, nil
	case bigRatType:
		result, err := toBigRat(source)
		if err != nil || isPtr {
			return result, err
		}
		return *result, nil
	}
	if !isPtr {
		return nil, fmt.Errorf("unsupported number type %v", rType)
	}
	elem, err := n.primitive.convert(baseType, source.Interface())
	if err != nil {
		return nil, err
	}
	ret := reflect.New(baseType)
	ret.Elem().Set(elem)
	return ret.Interface(), nil
}

func toBigInt(source reflect.Value) (*big.Int, error) {
	if source.CanInterface() {
		switch actual := source.Interface().(type) {
		case big.Int:
			return new(big.Int).Set(&actual), nil
		case big.Float:
			if actual.IsInf() {
				return nil, fmt.Errorf("cannot convert %v to big.Int", actual.String())
			}
			result, _ := actual.Int(nil)
			return result, nil
		case big.Rat:
			return new(big.Int).Quo(actual.Num(), actual.Denom()), nil
		case time.Time:
			return big.NewInt(actual.UnixMilli()), nil
		}
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(source.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(source.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := source.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("cannot convert %v to big.Int", f)
		}
		result, _ := big.NewFloat(f).Int(nil)
		return result, nil
	case reflect.Bool:
		if source.Bool() {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case reflect.String:
		text, err := bigText(source.String())
		if err != nil {
			return nil, err
		}
		digits, base := text, 10
		if hex, sign, ok := hexDigits(text); ok {
			digits, base = sign+hex, 16
		}
		if result, ok := new(big.Int).SetString(digits, base); ok {
			return result, nil
		}
		f, ok := new(big.Float).SetString(text)
		if !ok || f.IsInf() {
			return nil, fmt.Errorf("cannot convert %q to big.Int", text)
		}
		result, _ := f.Int(nil)
		return result, nil
	}
	return nil, fmt.Errorf("cannot convert %v to big.Int", source.Type())
}

func toBigFloat(source reflect.Value) (*big.Float, error) {
	if source.CanInterface() {
		switch actual := source.Interface().(type) {
		case big.Float:
			return new(big.Float).Set(&actual), nil
		case big.Int:
			return new(big.Float).SetInt(&actual), nil
		case big.Rat:
			return new(big.Float).SetRat(&actual), nil
		case time.Time:
			return new(big.Float).SetInt64(actual.UnixMilli()), nil
		}
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(source.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(source.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := source.Float()
		if math.IsNaN(f) {
			return nil, fmt.Errorf("cannot convert NaN to big.Float")
		}
		return big.NewFloat(f), nil
	case reflect.Bool:
		if source.Bool() {
			return big.NewFloat(1), nil
		}
		return big.NewFloat(0), nil
	case reflect.String:
		text, err := bigText(source.String())
		if err != nil {
			return nil, err
		}
		result, ok := new(big.Float).SetString(text)
		if !ok {
			return nil, fmt.Errorf("cannot convert %q to big.Float", text)
		}
		return result, nil
	}
	return nil, fmt.Errorf("cannot convert %v to big.Float", source.Type())
}

func toBigRat(source reflect.Value) (*big.Rat, error) {
	if source.CanInterface() {
		switch actual := source.Interface().(type) {
		case big.Rat:
			return new(big.Rat).Set(&actual), nil
		case big.Int:
			return new(big.Rat).SetInt(&actual), nil
		case big.Float:
			result, _ := actual.Rat(nil)
			if result == nil {
				return nil, fmt.Errorf("cannot convert %v to big.Rat", actual.String())
			}
			return result, nil
		case time.Time:
			return new(big.Rat).SetInt64(actual.UnixMilli()), nil
		}
	}
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(source.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Rat).SetUint64(source.Uint()), nil
	case reflect.Float32, reflect.Float64:
		result := new(big.Rat).SetFloat64(source.Float())
		if result == nil {
			return nil, fmt.Errorf("cannot convert %v to big.Rat", source.Float())
		}
		return result, nil
	case reflect.Bool:
		if source.Bool() {
			return big.NewRat(1, 1), nil
		}
		return new(big.Rat), nil
	case reflect.String:
		text, err := bigText(source.String())
		if err != nil {
			return nil, err
		}
		result, ok := new(big.Rat).SetString(text)
		if !ok {
			return nil, fmt.Errorf("cannot convert %q to big.Rat", text)
		}
		return result, nil
	}
	return nil, fmt.Errorf("cannot convert %v to big.Rat", source.Type())
}

// bigText returns numeric text, digit separating underscores are rejected
func bigText(text string) (string, error) {
	text = numericText(text)
	if strings.IndexByte(text, '_') != -1 {
		return "", fmt.Errorf("invalid number %q", text)
	}
	return text, nil
}
