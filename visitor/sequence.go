package visitor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	//ErrOddSequence is returned for flat key value sequences with odd length
	ErrOddSequence = errors.New("odd number of elements in key value sequence")
	emptyType      = reflect.TypeOf(struct{}{})
)

// SequenceOf creates an element visitor for value: slices, arrays and set keys are visited in place,
// map values are visited, strings are split with the delimiter and any other value is visited as a singleton
func SequenceOf(value interface{}, delimiter string) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case nil:
		return empty[int], nil
	case string:
		return TypedSliceVisitorOf[string](Split(actual, delimiter)), nil
	case []interface{}:
		return TypedSliceVisitorOf[interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return empty[int], nil
		}
		return SequenceOf(val.Elem().Interface(), delimiter)
	case reflect.String:
		return TypedSliceVisitorOf[string](Split(val.String(), delimiter)), nil
	case reflect.Slice, reflect.Array:
		return AnySliceVisitorOf(value)
	case reflect.Map:
		if val.Type().Elem() == emptyType {
			return SetVisitorOf(value)
		}
		return valuesOf(val), nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, fmt.Errorf("unsupported sequence source: %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		_, err := f(0, value)
		return err
	}, nil
}

// PairsOf creates a key value visitor for maps, structs and flat sequences of alternating keys and values
func PairsOf(value interface{}, tagName string, delimiter string) (Visitor[any, any], error) {
	if value == nil {
		return empty[any], nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Map:
		return AnyMapVisitorOf(value)
	case reflect.Ptr:
		if val.IsNil() {
			return empty[any], nil
		}
		if val.Elem().Kind() != reflect.Struct {
			return PairsOf(val.Elem().Interface(), tagName, delimiter)
		}
		fallthrough
	case reflect.Struct:
		visit, err := StructVisitorOf(value, tagName)
		if err != nil {
			return nil, err
		}
		return func(f func(key any, element any) (bool, error)) error {
			return visit(func(key string, element interface{}) (bool, error) {
				return f(key, element)
			})
		}, nil
	case reflect.Slice, reflect.Array, reflect.String:
		sequence, err := SequenceOf(value, delimiter)
		if err != nil {
			return nil, err
		}
		elements, err := Collect(sequence)
		if err != nil {
			return nil, err
		}
		if len(elements)%2 != 0 {
			return nil, fmt.Errorf("%w: %v", ErrOddSequence, len(elements))
		}
		return func(f func(key any, element any) (bool, error)) error {
			for i := 0; i < len(elements); i += 2 {
				continueVisit, err := f(elements[i], elements[i+1])
				if err != nil {
					return err
				}
				if !continueVisit {
					break
				}
			}
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported key value source: %T", value)
}

func valuesOf(val reflect.Value) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		iter := val.MapRange()
		for i := 0; iter.Next(); i++ {
			continueVisit, err := f(i, iter.Value().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func empty[K comparable](func(key K, element any) (bool, error)) error {
	return nil
}
