package conv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xconv/codec"
	"github.com/viant/xconv/desc"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestConvertContainers(t *testing.T) {
	testCases := []struct {
		description string
		target      *desc.Type
		source      interface{}
		expect      interface{}
		code        error
	}{
		{description: "list from text", target: desc.Of[[]int](), source: "1,2,3", expect: []int{1, 2, 3}},
		{description: "list from bracketed text", target: desc.Of[[]int](), source: "[1, 2, 3]", expect: []int{1, 2, 3}},
		{description: "list from strings", target: desc.Of[[]int](), source: []string{"1", "2"}, expect: []int{1, 2}},
		{description: "list from floats", target: desc.Of[[]int](), source: []float64{1.1, 2.2, 3.3}, expect: []int{1, 2, 3}},
		{description: "list from array", target: desc.Of[[]int64](), source: [2]int{4, 5}, expect: []int64{4, 5}},
		{description: "list from scalar", target: desc.Of[[]string](), source: "hello", expect: []string{"hello"}},
		{description: "list from number", target: desc.Of[[]int](), source: 5, expect: []int{5}},
		{description: "list from mixed", target: desc.Of[[]string](), source: []interface{}{"hello", 123, true, 45.67}, expect: []string{"hello", "123", "true", "45.67"}},
		{description: "empty list", target: desc.Of[[]int](), source: "", expect: []int{}},
		{description: "nested list", target: desc.Of[[][]int](), source: "[1,2],[3]", expect: [][]int{{1, 2}, {3}}},
		{description: "boxed list", target: desc.Of[[]*int](), source: []int{1, 2}, expect: []*int{ptrOf(1), ptrOf(2)}},
		{description: "pass through list", target: desc.Of[[]interface{}](), source: []int{1, 2}, expect: []interface{}{1, 2}},
		{description: "runes", target: desc.New(desc.Collection, desc.Of[[]rune]().Type(), desc.Rune), source: "ab中", expect: []rune{'a', 'b', '中'}},
		{description: "set", target: desc.Of[map[int]struct{}](), source: []string{"1", "2", "2"}, expect: map[int]struct{}{1: {}, 2: {}}},
		{description: "bool set", target: desc.New(desc.Collection, desc.Of[map[string]bool]().Type(), desc.Of[string]()), source: "a,b", expect: map[string]bool{"a": true, "b": true}},
		{description: "array", target: desc.Of[[3]int](), source: "1,2", expect: [3]int{1, 2, 0}},
		{description: "array overflow", target: desc.Of[[2]int](), source: []int{1, 2, 3}, code: ErrSourceParseFailure},
		{description: "boxed array", target: desc.Of[[1]*string](), source: []int{7}, expect: [1]*string{ptrOf("7")}},
		{description: "map", target: desc.Of[map[string]int](), source: map[string]string{"a": "1", "b": "2"}, expect: map[string]int{"a": 1, "b": 2}},
		{description: "map keys", target: desc.Of[map[int]string](), source: map[string]int{"1": 10}, expect: map[int]string{1: "10"}},
		{description: "map from struct", target: desc.Of[map[string]interface{}](), source: point{X: 1, Y: 2}, expect: map[string]interface{}{"x": 1, "y": 2}},
		{description: "map from pairs", target: desc.Of[map[string]int](), source: []interface{}{"a", 1, "b", "2"}, expect: map[string]int{"a": 1, "b": 2}},
		{description: "map from text pairs", target: desc.Of[map[string]float64](), source: "a,1.5,b,2", expect: map[string]float64{"a": 1.5, "b": 2}},
		{description: "map odd pairs", target: desc.Of[map[string]int](), source: []interface{}{"a", 1, "b"}, code: ErrSourceParseFailure},
		{description: "map element failure", target: desc.Of[map[string]int](), source: map[string]string{"a": "x"}, code: ErrSourceParseFailure},
		{description: "map of lists", target: desc.Of[map[string][]int](), source: map[string]string{"a": "1,2"}, expect: map[string][]int{"a": {1, 2}}},
		{description: "uncomparable key", target: desc.Of[map[interface{}]int](), source: []interface{}{[]int{1}, 1}, code: ErrUnsupportedTargetType},
	}
	for _, testCase := range testCases {
		actual, err := convert(testCase.source, testCase.target)
		if testCase.code != nil {
			assert.True(t, errors.Is(err, testCase.code), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Empty(t, cmp.Diff(testCase.expect, actual), testCase.description)
	}
}

func TestConvertCollection_Order(t *testing.T) {
	source := make([]int, 100)
	for i := range source {
		source[i] = 100 - i
	}
	actual, err := convert(source, desc.Of[[]string]())
	require.Nil(t, err)
	list := actual.([]string)
	require.Len(t, list, len(source))
	for i, item := range list {
		roundTrip, err := convert(item, desc.Of[int]())
		require.Nil(t, err)
		assert.Equal(t, source[i], roundTrip)
	}
}

func TestConvertBinary(t *testing.T) {
	testCases := []struct {
		description string
		target      *desc.Type
		source      interface{}
		expect      interface{}
		hasError    bool
	}{
		{description: "text", target: desc.Of[[]byte](), source: "hi", expect: []byte("hi")},
		{description: "bytes copy", target: desc.Of[[]byte](), source: []byte{1, 2}, expect: []byte{1, 2}},
		{description: "hex", target: desc.Of[[]byte](), source: codec.Hex("0AFF"), expect: []byte{10, 255}},
		{description: "numbers", target: desc.Of[[]byte](), source: []int{1, 2, 255}, expect: []byte{1, 2, 255}},
		{description: "invalid hex", target: desc.Of[[]byte](), source: codec.Hex("0g"), hasError: true},
		{description: "hex from bytes", target: desc.Of[codec.Hex](), source: []byte{0xAB, 0x01}, expect: codec.Hex("ab01")},
		{description: "hex from text", target: desc.Of[codec.Hex](), source: "AB", expect: codec.Hex("4142")},
		{description: "hex normalized", target: desc.Of[codec.Hex](), source: codec.Hex("ABCD"), expect: codec.Hex("abcd")},
		{description: "hex pointer", target: desc.Of[*codec.Hex](), source: []byte{1}, expect: ptrOf(codec.Hex("01"))},
	}
	for _, testCase := range testCases {
		actual, err := convert(testCase.source, testCase.target)
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrSourceParseFailure), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvertBinary_Charset(t *testing.T) {
	options := DefaultOptions()
	options.Charset = "gbk"
	actual, err := convert("中", desc.Of[[]byte](), WithOptions(options))
	require.Nil(t, err)
	assert.Equal(t, []byte{0xd6, 0xd0}, actual)

	text, err := convert([]byte{0xd6, 0xd0}, desc.Of[string](), WithOptions(options))
	require.Nil(t, err)
	assert.Equal(t, "中", text)
}

func TestConvertHex_RoundTrip(t *testing.T) {
	for _, data := range [][]byte{{}, {0}, {1, 2, 3}, []byte("hello world")} {
		hex, err := convert(data, desc.Of[codec.Hex]())
		require.Nil(t, err)
		actual, err := convert(hex, desc.Of[[]byte]())
		require.Nil(t, err)
		assert.Equal(t, data, actual)
	}
}
