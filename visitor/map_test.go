package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	var aMap = map[string]bool{
		"abc": true,
		"def": true}

	{
		cloned := make(map[string]bool)
		visit := MapVisitorOf[string, bool](aMap)
		err := visit(func(key string, element bool) (bool, error) {
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
	}
	{
		visit, err := AnyMapVisitorOf(aMap)
		assert.Nil(t, err)
		cloned := make(map[string]bool)
		err = visit(func(key any, element any) (bool, error) {
			cloned[key.(string)] = element.(bool)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
	}
	{
		fMap := map[float64]float64{
			1: 1,
		}
		visit, err := AnyMapVisitorOf(fMap)
		assert.Nil(t, err)
		cloned := make(map[float64]float64)
		err = visit(func(key any, element any) (bool, error) {
			cloned[key.(float64)] = element.(float64)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, fMap, cloned)
	}
	{
		visit, err := AnyMapVisitorOf(map[string]int{"a": 1})
		assert.Nil(t, err)
		err = visit(func(key any, element any) (bool, error) {
			return false, errors.New("stop")
		})
		assert.EqualError(t, err, "stop")
	}
	{
		_, err := AnyMapVisitorOf([]int{1})
		assert.NotNil(t, err)
	}
}
