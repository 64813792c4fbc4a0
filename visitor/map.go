package visitor

import (
	"fmt"
	"reflect"
)

// AnyMapVisitorOf creates a visitor for any map value
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return TypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return TypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return TypedMapVisitorOf[string, int](actual), nil
	case map[interface{}]interface{}:
		return TypedMapVisitorOf[interface{}, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key any, element any) (bool, error)) error {
		iter := val.MapRange()
		for iter.Next() {
			continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
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

// TypedMapVisitorOf returns visitor boxing typed map entries
func TypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
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

// SetVisitorOf creates a visitor over map keys with struct{} values
func SetVisitorOf(value interface{}) (Visitor[int, any], error) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected set, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		iter := val.MapRange()
		for i := 0; iter.Next(); i++ {
			continueVisit, err := f(i, iter.Key().Interface())
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
