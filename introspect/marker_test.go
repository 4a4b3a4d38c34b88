package introspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xunsafe"
)

func TestMarker_Set(t *testing.T) {
	var testCases = []struct {
		description string
		provider    func() interface{}
		set         []string
		expectSet   []string
		expectUnset []string
		expectError bool
	}{
		{
			description: "pointer holder allocated on first set",
			provider: func() interface{} {
				type EntityHas struct {
					Id     bool
					Name   bool
					Active bool
				}
				type Entity struct {
					Id     int
					Name   string
					Active bool
					Has    *EntityHas `setMarker:"true"`
				}
				return &Entity{}
			},
			set:         []string{"Id", "Active"},
			expectSet:   []string{"Id", "Active"},
			expectUnset: []string{"Name"},
		},
		{
			description: "value holder",
			provider: func() interface{} {
				type EntityHas struct {
					Id   bool
					Name bool
				}
				type Entity struct {
					Id   int
					Name string
					Has  EntityHas `presenceMarker:"true"`
				}
				return &Entity{}
			},
			set:         []string{"Name"},
			expectSet:   []string{"Name"},
			expectUnset: []string{"Id"},
		},
		{
			description: "marker without corresponding field",
			provider: func() interface{} {
				type EntityHas struct {
					Id    bool
					Other bool
				}
				type Entity struct {
					Id  int
					Has *EntityHas `setMarker:"true"`
				}
				return &Entity{}
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		value := testCase.provider()
		marker, err := NewMarker(reflect.TypeOf(value))
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		require.NotNil(t, marker, testCase.description)
		ptr := xunsafe.AsPointer(value)
		for _, name := range testCase.expectSet {
			assert.False(t, marker.IsSet(ptr, name), testCase.description+" "+name)
		}
		for _, name := range testCase.set {
			assert.Nil(t, marker.Set(ptr, name), testCase.description)
		}
		for _, name := range testCase.expectSet {
			assert.True(t, marker.IsSet(ptr, name), testCase.description+" "+name)
		}
		for _, name := range testCase.expectUnset {
			assert.False(t, marker.IsSet(ptr, name), testCase.description+" "+name)
		}
		assert.NotNil(t, marker.Set(ptr, "Unknown"), testCase.description)
	}
}

func TestNewMarker_NoHolder(t *testing.T) {
	type Entity struct {
		Id int
	}
	marker, err := NewMarker(reflect.TypeOf(Entity{}))
	assert.Nil(t, err)
	assert.Nil(t, marker)
}
