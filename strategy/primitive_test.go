package strategy

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/xconv/descriptor"
)

type weekday int

func (w weekday) String() string {
	return [...]string{"Sun", "Mon"}[w]
}

func TestPrimitive_Convert(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	intValue := 12
	var testCases = []struct {
		description  string
		target       *descriptor.Type
		value        interface{}
		defaultValue interface{}
		expect       interface{}
	}{
		{description: "text to int", target: descriptor.For[int](), value: "42", expect: 42},
		{description: "grouped text to int", target: descriptor.For[int](), value: "1,234", expect: 1234},
		{description: "hex text to int", target: descriptor.For[int](), value: "0x10", expect: 16},
		{description: "upper hex text to int", target: descriptor.For[int](), value: "0X1f", expect: 31},
		{description: "negative hex text to int", target: descriptor.For[int](), value: "-0x10", expect: -16},
		{description: "leading zero text to int", target: descriptor.For[int](), value: "010", expect: 10},
		{description: "leading zeros text to int", target: descriptor.For[int](), value: "007", expect: 7},
		{description: "underscored text to int", target: descriptor.For[int](), value: "1_000", defaultValue: -1, expect: -1},
		{description: "leading zero text to uint", target: descriptor.For[uint](), value: "010", expect: uint(10)},
		{description: "hex text to uint", target: descriptor.For[uint8](), value: "0xff", expect: uint8(255)},
		{description: "decimal text truncated to int", target: descriptor.For[int64](), value: "3.9", expect: int64(3)},
		{description: "float to int", target: descriptor.For[int](), value: 7.8, expect: 7},
		{description: "bool to int", target: descriptor.For[int](), value: true, expect: 1},
		{description: "pointer to int", target: descriptor.For[int32](), value: &intValue, expect: int32(12)},
		{description: "overflow falls back", target: descriptor.For[int8](), value: 300, defaultValue: int8(-1), expect: int8(-1)},
		{description: "overflow without default", target: descriptor.For[int8](), value: 300, expect: int8(0)},
		{description: "malformed with default", target: descriptor.For[int](), value: "abc", defaultValue: 5, expect: 5},
		{description: "single character rune", target: descriptor.For[rune](), value: "A", expect: 'A'},
		{description: "time to int64 millis", target: descriptor.For[int64](), value: ts, expect: ts.UnixMilli()},
		{description: "negative to uint", target: descriptor.For[uint](), value: -1, defaultValue: uint(9), expect: uint(9)},
		{description: "text to uint", target: descriptor.For[uint16](), value: "65535", expect: uint16(65535)},
		{description: "text to float", target: descriptor.For[float64](), value: "1.5", expect: 1.5},
		{description: "float32 overflow", target: descriptor.For[float32](), value: math.MaxFloat64, defaultValue: float32(1), expect: float32(1)},
		{description: "yes to bool", target: descriptor.For[bool](), value: "Yes", expect: true},
		{description: "numeric text to bool", target: descriptor.For[bool](), value: "0", expect: false},
		{description: "int to bool", target: descriptor.For[bool](), value: 3, expect: true},
		{description: "int to string", target: descriptor.For[string](), value: 12, expect: "12"},
		{description: "float to string", target: descriptor.For[string](), value: 1.25, expect: "1.25"},
		{description: "stringer to string", target: descriptor.For[string](), value: weekday(1), expect: "Mon"},
		{description: "error to string", target: descriptor.For[string](), value: errors.New("failed"), expect: "failed"},
		{description: "runes to string", target: descriptor.For[string](), value: []rune("abc"), expect: "abc"},
		{description: "time to string", target: descriptor.For[string](), value: ts, expect: "2024-01-02 03:04:05.000"},
		{description: "text to complex", target: descriptor.For[complex128](), value: "1+2i", expect: complex(1, 2)},
	}

	set := newTestSet(nil)
	for _, testCase := range testCases {
		actual, err := set.Primitive.Convert(testCase.target, testCase.value, testCase.defaultValue)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
