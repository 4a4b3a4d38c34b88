package strategy

import (
	"encoding/json"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/xconv/descriptor"
)

func TestSet_Builtins(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	fallback := time.Unix(0, 0)
	link, _ := url.Parse("https://example.com/a?b=1")
	var testCases = []struct {
		description  string
		target       reflect.Type
		value        interface{}
		defaultValue interface{}
		expect       interface{}
	}{
		{description: "int to string", target: stringType, value: 42, expect: "42"},
		{description: "bytes to string", target: stringType, value: []byte("abc"), expect: "abc"},
		{description: "string to bytes", target: bytesType, value: "abc", expect: []byte("abc")},
		{description: "ints to bytes", target: bytesType, value: []int{1, 2}, expect: []byte{1, 2}},
		{description: "layout text to time", target: timeType, value: "2024-05-06 07:08:09.000", expect: ts},
		{description: "rfc3339 text to time", target: timeType, value: "2024-05-06T07:08:09Z", expect: ts},
		{description: "unix seconds to time", target: timeType, value: ts.Unix(), expect: time.Unix(ts.Unix(), 0)},
		{description: "unix millis to time", target: timeType, value: ts.UnixMilli(), expect: time.UnixMilli(ts.UnixMilli())},
		{description: "malformed time", target: timeType, value: "soon", defaultValue: fallback, expect: fallback},
		{description: "date only text to time", target: timeType, value: "2024-05-06", expect: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{description: "trailing garbage time", target: timeType, value: "2024-05-06 07:08:09.000xyz", defaultValue: fallback, expect: fallback},
		{description: "partial date time", target: timeType, value: "2024-05", defaultValue: fallback, expect: fallback},
		{description: "text to duration", target: durationType, value: "1m30s", expect: 90 * time.Second},
		{description: "int to duration", target: durationType, value: 1500, expect: time.Duration(1500)},
		{description: "text to url", target: urlPtrType, value: "https://example.com/a?b=1", expect: link},
		{description: "text to url value", target: urlType, value: "https://example.com/a?b=1", expect: *link},
		{description: "int to json number", target: jsonNumberType, value: 12, expect: json.Number("12")},
		{description: "text to json number", target: jsonNumberType, value: " 1.5 ", expect: json.Number("1.5")},
		{description: "malformed json number", target: jsonNumberType, value: "x", defaultValue: json.Number("0"), expect: json.Number("0")},
	}

	set := newTestSet(nil)
	builtins := set.Builtins()
	for _, testCase := range testCases {
		converter, ok := builtins[testCase.target]
		if !assert.True(t, ok, testCase.description) {
			continue
		}
		actual, err := converter.Convert(descriptor.Of(testCase.target), testCase.value, testCase.defaultValue)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
