package desc

import (
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type node struct {
	ID   int
	Next *node
}

type nested []nested

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		rType    reflect.Type
		kind     Kind
		shape    Shape
		nullable bool
		elems    []Kind
	}{
		{name: "bool", rType: reflect.TypeOf(true), kind: Boolean},
		{name: "uint8", rType: reflect.TypeOf(uint8(0)), kind: Byte},
		{name: "int16", rType: reflect.TypeOf(int16(0)), kind: Short},
		{name: "int32", rType: reflect.TypeOf(int32(0)), kind: Integer},
		{name: "int", rType: reflect.TypeOf(0), kind: Long},
		{name: "float32", rType: reflect.TypeOf(float32(0)), kind: Float},
		{name: "float64", rType: reflect.TypeOf(0.0), kind: Double},
		{name: "*int", rType: reflect.TypeOf((*int)(nil)), kind: Long, nullable: true},
		{name: "big.Int", rType: reflect.TypeOf(&big.Int{}), kind: BigInteger, nullable: true},
		{name: "big.Float", rType: reflect.TypeOf(big.Float{}), kind: BigDecimal},
		{name: "string", rType: reflect.TypeOf(""), kind: String},
		{name: "time", rType: reflect.TypeOf(time.Time{}), kind: Temporal},
		{name: "array", rType: reflect.TypeOf([3]int{}), kind: Array, elems: []Kind{Long}},
		{name: "list", rType: reflect.TypeOf([]string{}), kind: Collection, shape: ShapeList, nullable: true, elems: []Kind{String}},
		{name: "set", rType: reflect.TypeOf(map[int]struct{}{}), kind: Collection, shape: ShapeSet, nullable: true, elems: []Kind{Long}},
		{name: "binary", rType: reflect.TypeOf([]byte{}), kind: Collection, shape: ShapeBinary, nullable: true, elems: []Kind{Byte}},
		{name: "map", rType: reflect.TypeOf(map[string]float32{}), kind: Map, nullable: true, elems: []Kind{String, Float}},
		{name: "bool map", rType: reflect.TypeOf(map[string]bool{}), kind: Map, nullable: true, elems: []Kind{String, Boolean}},
		{name: "bean", rType: reflect.TypeOf(node{}), kind: Bean},
		{name: "erased", rType: reflect.TypeOf([]interface{}{}), kind: Collection, shape: ShapeList, nullable: true, elems: []Kind{Unknown}},
		{name: "interface", rType: reflect.TypeOf((*interface{})(nil)).Elem(), kind: Unknown, nullable: true},
		{name: "chan", rType: reflect.TypeOf(make(chan int)), kind: Invalid},
		{name: "func", rType: reflect.TypeOf(func() {}), kind: Invalid},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := Resolve(testCase.rType)
			assert.Equal(t, testCase.kind, actual.Kind())
			assert.Equal(t, testCase.shape, actual.Shape())
			assert.Equal(t, testCase.nullable, actual.IsNullable())
			assert.Equal(t, testCase.rType, actual.Type())
			var elems []Kind
			for _, elem := range actual.Elems() {
				elems = append(elems, elem.Kind())
			}
			assert.Equal(t, testCase.elems, elems)
		})
	}
}

func TestResolve_Recursive(t *testing.T) {
	actual := Resolve(reflect.TypeOf(nested{}))
	depth := 0
	for elem := actual; elem.Kind() == Collection; elem = elem.Elem() {
		depth++
	}
	assert.Equal(t, maxDepth+1, depth)
}

func TestType_Accessors(t *testing.T) {
	mapType := Of[map[string][]int]()
	assert.Equal(t, String, mapType.Key().Kind())
	assert.Equal(t, Collection, mapType.Value().Kind())
	assert.Equal(t, Long, mapType.Value().Elem().Kind())
	assert.Equal(t, "Map<String,Collection<Long>>", mapType.String())
	assert.Equal(t, "*Long", Of[*int]().String())

	ptr := Of[*int]()
	assert.Equal(t, reflect.TypeOf(0), ptr.Base())
	assert.True(t, ptr.IsPointer())
	assert.False(t, ptr.IsPrimitive())
	assert.Nil(t, ptr.Zero())
	assert.True(t, Of[int]().IsPrimitive())
	assert.Equal(t, 0, Of[int]().Zero())
	assert.Equal(t, Unknown, Of[string]().Elem().Kind())

	assert.Equal(t, Character, Rune.Kind())
	assert.Equal(t, reflect.TypeOf(rune(0)), Rune.Type())
}

func TestNew(t *testing.T) {
	custom := New(Enum, reflect.TypeOf(""))
	assert.Equal(t, Enum, custom.Kind())
	assert.False(t, custom.IsNullable())

	list := New(Collection, reflect.TypeOf([]int{}), Of[int]())
	assert.Equal(t, ShapeList, list.Shape())
	assert.True(t, list.IsNullable())
	assert.Equal(t, Unknown, New(Unknown, nil).Kind())
}

func TestWrap(t *testing.T) {
	intType := reflect.TypeOf(0)
	assert.Equal(t, reflect.TypeOf((*int)(nil)), Wrap(intType))
	assert.Equal(t, Wrap(intType), Wrap(Wrap(intType)))
	assert.Equal(t, intType, Unwrap(Wrap(intType)))
	assert.Equal(t, intType, Unwrap(intType))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Temporal", Temporal.String())
	assert.Equal(t, "Invalid", Kind(100).String())
	assert.True(t, BigDecimal.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.False(t, BigInteger.IsPrimitive())
	assert.True(t, Map.IsContainer())
	assert.Len(t, Kinds(), int(Unknown))
}
