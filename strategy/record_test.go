package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/xconv/descriptor"
)

type (
	address struct {
		City string `json:"city"`
		Zip  int
	}

	account struct {
		ID       int    `json:"id"`
		UserName string `json:"userName"`
		Score    float64
		Tags     []string
		Home     *address
		Created  time.Time   `format:"dateFormat=YYYY-MM-DD"`
		Has      *accountHas `setMarker:"true"`
	}

	accountHas struct {
		ID       bool
		UserName bool
		Score    bool
	}

	pair struct {
		A int
		B int
	}

	wrapper struct {
		P pair
		N int
	}
)

func TestRecord_Convert(t *testing.T) {
	set := newTestSet(nil)
	source := map[string]interface{}{
		"id":         "7",
		"user_name":  "bob",
		"SCORE":      "2.5",
		"tags":       "x,y",
		"home":       map[string]interface{}{"city": "Reno", "zip": "89501"},
		"created":    "2024-03-01",
		"unknownKey": true,
	}
	actual, err := set.Record.Convert(descriptor.For[*account](), source, nil)
	if !assert.Nil(t, err) {
		return
	}
	result, ok := actual.(*account)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, 7, result.ID)
	assert.Equal(t, "bob", result.UserName)
	assert.Equal(t, 2.5, result.Score)
	assert.Equal(t, []string{"x", "y"}, result.Tags)
	assert.Equal(t, &address{City: "Reno", Zip: 89501}, result.Home)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), result.Created)
	if assert.NotNil(t, result.Has) {
		assert.Equal(t, accountHas{ID: true, UserName: true, Score: true}, *result.Has)
	}
}

func TestRecord_TryConvert(t *testing.T) {
	var testCases = []struct {
		description string
		target      *descriptor.Type
		value       interface{}
		expect      interface{}
		expectOk    bool
		expectErr   bool
	}{
		{description: "map to struct", target: descriptor.For[pair](), value: map[string]int{"a": 1, "b": 2}, expect: pair{A: 1, B: 2}, expectOk: true},
		{description: "struct to struct", target: descriptor.For[pair](), value: &address{City: "x", Zip: 3}, expect: pair{}, expectOk: true},
		{description: "record to pointer", target: descriptor.For[*pair](), value: pair{A: 3}, expect: &pair{A: 3}, expectOk: true},
		{description: "scalar source", target: descriptor.For[pair](), value: 5},
		{description: "field conversion error", target: descriptor.For[wrapper](), value: map[string]interface{}{"p": 5}, expectErr: true},
	}

	set := newTestSet(nil)
	for _, testCase := range testCases {
		actual, ok, err := set.Record.TryConvert(testCase.target, testCase.value)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		if ok {
			assert.Equal(t, testCase.expect, actual, testCase.description)
		}
	}
}

func TestRecord_TimeLayout(t *testing.T) {
	set := newTestSet(nil)
	var testCases = []struct {
		description string
		value       interface{}
		expect      time.Time
	}{
		{description: "tagged layout", value: "2024-03-01", expect: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{description: "rfc3339 text", value: "2024-03-01T10:20:30Z", expect: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{description: "malformed text", value: "garbage", expect: time.Time{}},
	}
	for _, testCase := range testCases {
		actual, err := set.Record.Convert(descriptor.For[account](), map[string]interface{}{"created": testCase.value}, nil)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual.(account).Created, testCase.description)
	}
}

func TestRecord_CaseSensitive(t *testing.T) {
	config := &Config{CaseSensitive: true}
	set := New(config)
	config.Dispatcher = &testDispatcher{set: set}
	actual, err := set.Record.Convert(descriptor.For[pair](), map[string]int{"a": 1, "B": 2}, nil)
	assert.Nil(t, err)
	assert.Equal(t, pair{B: 2}, actual)
}

func TestRecord_IgnoreFieldErrors(t *testing.T) {
	config := &Config{IgnoreFieldErrors: true}
	set := New(config)
	config.Dispatcher = &testDispatcher{set: set}
	actual, err := set.Record.Convert(descriptor.For[wrapper](), map[string]interface{}{"p": 5, "n": 4}, nil)
	assert.Nil(t, err)
	assert.Equal(t, wrapper{N: 4}, actual)
}
