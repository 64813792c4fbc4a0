package visitor

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyMapVisitorOf(t *testing.T) {
	var aMap = map[string]bool{
		"abc": true,
		"def": true}
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
		_ = visit(func(key any, element any) (bool, error) {
			cloned[key.(float64)] = element.(float64)
			return true, nil
		})
		assert.EqualValues(t, fMap, cloned)
	}
	_, err := AnyMapVisitorOf([]int{})
	assert.Error(t, err)
}

func TestSetVisitorOf(t *testing.T) {
	visit, err := SetVisitorOf(map[int]struct{}{3: {}, 1: {}, 2: {}})
	assert.Nil(t, err)
	elements, err := Collect(visit)
	assert.Nil(t, err)
	actual := make([]int, 0, len(elements))
	for _, element := range elements {
		actual = append(actual, element.(int))
	}
	sort.Ints(actual)
	assert.Equal(t, []int{1, 2, 3}, actual)
}
