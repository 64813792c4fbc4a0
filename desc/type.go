package desc

import (
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/viant/xconv/internal/lru"
)

const maxDepth = 32

var (
	timeType       = reflect.TypeOf(time.Time{})
	bigIntType     = reflect.TypeOf(big.Int{})
	bigFloatType   = reflect.TypeOf(big.Float{})
	emptyType      = reflect.TypeOf(struct{}{})
	interfaceType  = reflect.TypeOf((*interface{})(nil)).Elem()
	unknownElement = &Type{kind: Unknown, rType: interfaceType, nullable: true}
)

// Rune describes int32 values carrying a code point
var Rune = New(Character, reflect.TypeOf(rune(0)))

var cache = lru.New[reflect.Type, *Type](lru.DefaultCapacity)

// Type represents canonical conversion target description
type Type struct {
	kind     Kind
	shape    Shape
	nullable bool
	rType    reflect.Type
	elems    []*Type
}

// Kind returns conversion category
func (t *Type) Kind() Kind { return t.kind }

// Shape returns container variant
func (t *Type) Shape() Shape { return t.shape }

// IsNullable returns true if type has nil representation
func (t *Type) IsNullable() bool { return t.nullable }

// Type returns requested go type
func (t *Type) Type() reflect.Type { return t.rType }

// Base returns requested type with pointer dereferenced
func (t *Type) Base() reflect.Type {
	if t.rType.Kind() == reflect.Ptr {
		return t.rType.Elem()
	}
	return t.rType
}

// IsPointer returns true if requested type is a pointer
func (t *Type) IsPointer() bool {
	return t.rType.Kind() == reflect.Ptr
}

// Elems returns element descriptors, key then value for maps
func (t *Type) Elems() []*Type { return t.elems }

// Elem returns collection or array element, or map value descriptor
func (t *Type) Elem() *Type {
	switch len(t.elems) {
	case 0:
		return unknownElement
	case 1:
		return t.elems[0]
	}
	return t.elems[1]
}

// Key returns map key descriptor
func (t *Type) Key() *Type {
	if len(t.elems) == 0 {
		return unknownElement
	}
	return t.elems[0]
}

// Value returns map value descriptor
func (t *Type) Value() *Type {
	return t.Elem()
}

// Zero returns zero value of the requested type
func (t *Type) Zero() interface{} {
	return reflect.Zero(t.rType).Interface()
}

// IsPrimitive returns true for primitive kind without nil representation
func (t *Type) IsPrimitive() bool {
	return t.kind.IsPrimitive() && !t.nullable
}

func (t *Type) String() string {
	builder := strings.Builder{}
	if t.IsPointer() {
		builder.WriteString("*")
	}
	builder.WriteString(t.kind.String())
	if len(t.elems) > 0 {
		builder.WriteString("<")
		for i, elem := range t.elems {
			if i > 0 {
				builder.WriteString(",")
			}
			builder.WriteString(elem.String())
		}
		builder.WriteString(">")
	}
	return builder.String()
}

// New creates explicit type descriptor
func New(kind Kind, rType reflect.Type, elems ...*Type) *Type {
	ret := &Type{kind: kind, rType: rType, elems: elems}
	if rType == nil {
		ret.rType = interfaceType
	}
	switch ret.rType.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		ret.nullable = true
	}
	if kind == Collection {
		ret.shape = shapeOf(ret.rType)
	}
	return ret
}

// Of returns type descriptor for T
func Of[T any]() *Type {
	return Resolve(reflect.TypeOf((*T)(nil)).Elem())
}

// Resolve returns canonical type descriptor
func Resolve(rType reflect.Type) *Type {
	if rType == nil {
		return unknownElement
	}
	return cache.Load(rType, func(key reflect.Type) *Type {
		return resolve(key, 0)
	})
}

// Wrap returns nullable pointer type for a value type
func Wrap(rType reflect.Type) reflect.Type {
	if rType.Kind() == reflect.Ptr {
		return rType
	}
	return reflect.PtrTo(rType)
}

// Unwrap returns value type for a pointer type
func Unwrap(rType reflect.Type) reflect.Type {
	if rType.Kind() == reflect.Ptr {
		return rType.Elem()
	}
	return rType
}

func resolve(rType reflect.Type, depth int) *Type {
	if depth > maxDepth {
		return unknownElement
	}
	if rType.Kind() == reflect.Ptr {
		elem := rType.Elem()
		if elem.Kind() == reflect.Ptr {
			return &Type{kind: Unknown, rType: rType, nullable: true}
		}
		base := resolve(elem, depth)
		return &Type{kind: base.kind, shape: base.shape, nullable: true, rType: rType, elems: base.elems}
	}
	ret := &Type{rType: rType, kind: kindOf(rType)}
	switch rType.Kind() {
	case reflect.Interface:
		ret.nullable = true
	case reflect.Slice:
		ret.nullable = true
		ret.shape = shapeOf(rType)
		ret.elems = []*Type{resolve(rType.Elem(), depth+1)}
	case reflect.Array:
		ret.elems = []*Type{resolve(rType.Elem(), depth+1)}
	case reflect.Map:
		ret.nullable = true
		if ret.kind == Collection {
			ret.shape = ShapeSet
			ret.elems = []*Type{resolve(rType.Key(), depth+1)}
			break
		}
		ret.elems = []*Type{resolve(rType.Key(), depth+1), resolve(rType.Elem(), depth+1)}
	}
	return ret
}

func shapeOf(rType reflect.Type) Shape {
	switch rType.Kind() {
	case reflect.Slice:
		if rType.Elem().Kind() == reflect.Uint8 {
			return ShapeBinary
		}
		return ShapeList
	case reflect.Map:
		return ShapeSet
	}
	return ShapeNone
}

func kindOf(rType reflect.Type) Kind {
	switch rType {
	case timeType:
		return Temporal
	case bigIntType:
		return BigInteger
	case bigFloatType:
		return BigDecimal
	}
	switch rType.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int8, reflect.Uint8:
		return Byte
	case reflect.Int16, reflect.Uint16:
		return Short
	case reflect.Int32, reflect.Uint32:
		return Integer
	case reflect.Int, reflect.Uint, reflect.Int64, reflect.Uint64, reflect.Uintptr:
		return Long
	case reflect.Float32:
		return Float
	case reflect.Float64:
		return Double
	case reflect.String:
		return String
	case reflect.Array:
		return Array
	case reflect.Slice:
		return Collection
	case reflect.Map:
		// map[K]bool stays a Map, sets of bool members need an explicit descriptor
		if rType.Elem() == emptyType {
			return Collection
		}
		return Map
	case reflect.Struct:
		return Bean
	case reflect.Interface:
		return Unknown
	}
	return Invalid
}
