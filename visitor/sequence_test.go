package visitor

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		delimiter string
		expect    []string
	}{
		{name: "simple", text: "1,2,3", expect: []string{"1", "2", "3"}},
		{name: "spaces", text: " a , b ,c ", expect: []string{"a", "b", "c"}},
		{name: "brackets", text: "[1, 2]", expect: []string{"1", "2"}},
		{name: "blank", text: "  ", expect: []string{}},
		{name: "empty brackets", text: "[]", expect: []string{}},
		{name: "quoted", text: `'a,b',"c"`, expect: []string{"a,b", "c"}},
		{name: "nested", text: "[1,2],[3]", expect: []string{"[1,2]", "[3]"}},
		{name: "trailing", text: "a,", expect: []string{"a", ""}},
		{name: "semicolon", text: "a;b", delimiter: ";", expect: []string{"a", "b"}},
		{name: "custom", text: "a::b", delimiter: "::", expect: []string{"a", "b"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expect, Split(testCase.text, testCase.delimiter))
		})
	}
}

func TestSequenceOf(t *testing.T) {
	var nilPtr *[]int
	testCases := []struct {
		name   string
		value  interface{}
		expect []interface{}
		sorted bool
	}{
		{name: "nil", value: nil},
		{name: "nil pointer", value: nilPtr},
		{name: "text", value: "1,2,3", expect: []interface{}{"1", "2", "3"}},
		{name: "slice", value: []int{1, 2}, expect: []interface{}{1, 2}},
		{name: "pointer", value: &[]string{"x"}, expect: []interface{}{"x"}},
		{name: "array", value: [2]bool{true, false}, expect: []interface{}{true, false}},
		{name: "set", value: map[string]struct{}{"b": {}, "a": {}}, expect: []interface{}{"a", "b"}, sorted: true},
		{name: "map values", value: map[int]string{1: "a", 2: "b"}, expect: []interface{}{"a", "b"}, sorted: true},
		{name: "scalar", value: 42, expect: []interface{}{42}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			visit, err := SequenceOf(testCase.value, ",")
			require.NoError(t, err)
			actual, err := Collect(visit)
			require.NoError(t, err)
			if testCase.sorted {
				sort.Slice(actual, func(i, j int) bool { return actual[i].(string) < actual[j].(string) })
			}
			assert.Equal(t, testCase.expect, actual)
		})
	}
	_, err := SequenceOf(make(chan int), ",")
	assert.Error(t, err)
}

func TestPairsOf(t *testing.T) {
	type Pair struct {
		Key   string `json:"key"`
		Value int
	}
	testCases := []struct {
		name   string
		value  interface{}
		expect map[interface{}]interface{}
		err    error
	}{
		{name: "map", value: map[string]int{"a": 1}, expect: map[interface{}]interface{}{"a": 1}},
		{name: "struct", value: Pair{Key: "k", Value: 2}, expect: map[interface{}]interface{}{"key": "k", "Value": 2}},
		{name: "struct pointer", value: &Pair{Key: "k"}, expect: map[interface{}]interface{}{"key": "k", "Value": 0}},
		{name: "flat", value: []interface{}{"a", 1, "b", 2}, expect: map[interface{}]interface{}{"a": 1, "b": 2}},
		{name: "flat text", value: "a,1", expect: map[interface{}]interface{}{"a": "1"}},
		{name: "odd", value: []int{1, 2, 3}, err: ErrOddSequence},
		{name: "nil", value: nil, expect: map[interface{}]interface{}{}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			visit, err := PairsOf(testCase.value, "json", ",")
			if testCase.err != nil {
				assert.True(t, errors.Is(err, testCase.err))
				return
			}
			require.NoError(t, err)
			actual := map[interface{}]interface{}{}
			err = visit(func(key any, element any) (bool, error) {
				actual[key] = element
				return true, nil
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
	_, err := PairsOf(3, "json", ",")
	assert.Error(t, err)
}
