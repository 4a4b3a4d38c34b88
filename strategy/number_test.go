package strategy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/xconv/descriptor"
)

func TestNumber_Convert(t *testing.T) {
	fallback := big.NewInt(-1)
	var testCases = []struct {
		description  string
		target       *descriptor.Type
		value        interface{}
		defaultValue interface{}
		expect       string
	}{
		{description: "text to big int", target: descriptor.For[*big.Int](), value: "123456789012345678901234567890", expect: "123456789012345678901234567890"},
		{description: "decimal text to big int", target: descriptor.For[*big.Int](), value: "12.7", expect: "12"},
		{description: "leading zero text to big int", target: descriptor.For[*big.Int](), value: "010", expect: "10"},
		{description: "hex text to big int", target: descriptor.For[*big.Int](), value: "0x1F", expect: "31"},
		{description: "underscored text to big int", target: descriptor.For[*big.Int](), value: "1_000", defaultValue: fallback, expect: "-1"},
		{description: "int to big int", target: descriptor.For[*big.Int](), value: 42, expect: "42"},
		{description: "malformed text to big int", target: descriptor.For[*big.Int](), value: "12x", defaultValue: fallback, expect: "-1"},
		{description: "text to big float", target: descriptor.For[*big.Float](), value: "1.5", expect: "1.5"},
		{description: "text to big rat", target: descriptor.For[*big.Rat](), value: "1/3", expect: "1/3"},
		{description: "float to big rat", target: descriptor.For[*big.Rat](), value: 0.5, expect: "1/2"},
		{description: "big int to big rat", target: descriptor.For[*big.Rat](), value: big.NewInt(3), expect: "3/1"},
	}

	set := newTestSet(nil)
	for _, testCase := range testCases {
		actual, err := set.Number.Convert(testCase.target, testCase.value, testCase.defaultValue)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		switch number := actual.(type) {
		case *big.Int:
			assert.Equal(t, testCase.expect, number.String(), testCase.description)
		case *big.Float:
			assert.Equal(t, testCase.expect, number.Text('f', -1), testCase.description)
		case *big.Rat:
			assert.Equal(t, testCase.expect, number.String(), testCase.description)
		default:
			t.Errorf("%v: unexpected result type %T", testCase.description, actual)
		}
	}
}

func TestNumber_ConvertPointer(t *testing.T) {
	set := newTestSet(nil)
	actual, err := set.Number.Convert(descriptor.For[*int](), "17", nil)
	assert.Nil(t, err)
	if assert.IsType(t, new(int), actual) {
		assert.Equal(t, 17, *actual.(*int))
	}
	actual, err = set.Number.Convert(descriptor.For[*float64](), "abc", nil)
	assert.Nil(t, err)
	assert.Nil(t, actual)

	value, err := set.Number.Convert(descriptor.For[big.Int](), 5, nil)
	assert.Nil(t, err)
	if assert.IsType(t, big.Int{}, value) {
		number := value.(big.Int)
		assert.Equal(t, "5", number.String())
	}
}
