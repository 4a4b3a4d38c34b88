package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceVisitorOf(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}

	visit, err := SliceVisitorOf[any](mySlice)
	if !assert.Nil(t, err) {
		return
	}
	clone := []interface{}{}
	err = visit(func(index int, element interface{}) (bool, error) {
		clone = append(clone, element)
		return true, nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, mySlice, clone)

	_, err = SliceVisitorOf[string](mySlice)
	assert.NotNil(t, err)
}

func TestAnySliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		limit       int
		expect      []interface{}
		expectError bool
	}{
		{description: "typed", value: []string{"a", "b"}, limit: 10, expect: []interface{}{"a", "b"}},
		{description: "reflection slice", value: []uint16{1, 2, 3}, limit: 10, expect: []interface{}{uint16(1), uint16(2), uint16(3)}},
		{description: "array", value: [2]int{4, 5}, limit: 10, expect: []interface{}{4, 5}},
		{description: "early stop", value: []int{1, 2, 3}, limit: 2, expect: []interface{}{1, 2}},
		{description: "not a slice", value: "abc", expectError: true},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.value)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		var actual []interface{}
		err = visit(func(key int, element any) (bool, error) {
			actual = append(actual, element)
			return len(actual) < testCase.limit, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
