package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// StructVisitorOf creates a visitor over exported struct fields keyed by tag resolved names
func StructVisitorOf(value interface{}, tagName string) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct, got nil %T", value)
		}
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	ptr := xunsafe.AsPointer(value)
	fields := FieldsOf(structType, tagName)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for _, field := range fields {
			continueVisit, err := f(field.Key, field.Value(ptr))
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
