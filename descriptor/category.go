package descriptor

import (
	"math/big"
	"reflect"
)

// Category represents builtin conversion category of a concrete type
type Category int

const (
	//CategoryNone no builtin category, record or failure
	CategoryNone Category = iota
	//CategoryCollection slice types
	CategoryCollection
	//CategoryMap map types
	CategoryMap
	//CategoryPrimitive bool, numeric, complex and string kinds
	CategoryPrimitive
	//CategoryNumber big numbers and pointers to numeric kinds
	CategoryNumber
	//CategoryEnum types registered with enum catalog
	CategoryEnum
	//CategoryArray fixed size array types
	CategoryArray
	//CategoryPointer pointers to non struct types
	CategoryPointer
)

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})
)

var categoryNames = []string{"none", "collection", "map", "primitive", "number", "enum", "array", "pointer"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "none"
}

// Classify returns conversion category for supplied type, isEnum can be nil
func Classify(rType reflect.Type, isEnum func(rType reflect.Type) bool) Category {
	if rType == nil {
		return CategoryNone
	}
	if isEnum != nil && isEnum(rType) {
		return CategoryEnum
	}
	switch rType.Kind() {
	case reflect.Slice:
		return CategoryCollection
	case reflect.Map:
		return CategoryMap
	case reflect.Array:
		return CategoryArray
	case reflect.Struct:
		if IsBigNumber(rType) {
			return CategoryNumber
		}
	case reflect.Ptr:
		elem := rType.Elem()
		if IsBigNumber(elem) {
			return CategoryNumber
		}
		if IsNumeric(elem.Kind()) && elem.PkgPath() == "" {
			return CategoryNumber
		}
		if elem.Kind() == reflect.Struct {
			return CategoryNone
		}
		return CategoryPointer
	default:
		if IsPrimitive(rType.Kind()) {
			return CategoryPrimitive
		}
	}
	return CategoryNone
}

// IsBigNumber returns true for math/big number types
func IsBigNumber(rType reflect.Type) bool {
	switch rType {
	case bigIntType, bigFloatType, bigRatType:
		return true
	}
	return false
}

// IsNumeric returns true for integer, float and complex kinds
func IsNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// IsPrimitive returns true for scalar kinds
func IsPrimitive(kind reflect.Kind) bool {
	return kind == reflect.Bool || kind == reflect.String || IsNumeric(kind)
}
