package xconv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/desc"
)

// Convert converts value to target with the default converter
func Convert(target interface{}, value interface{}) (interface{}, error) {
	return Default().Convert(target, value)
}

// ConvertQuietly converts value to target with the default converter, failures yield defaultValue
func ConvertQuietly(target interface{}, value interface{}, defaultValue interface{}) interface{} {
	return Default().ConvertQuietly(target, value, defaultValue)
}

// ConvertWithCheck converts value to target with the default converter
func ConvertWithCheck(target interface{}, value interface{}, defaultValue interface{}, quiet bool) (interface{}, error) {
	return Default().ConvertWithCheck(target, value, defaultValue, quiet)
}

// Into converts value into dest pointer with the default converter
func Into(value interface{}, dest interface{}) error {
	return Default().Into(value, dest)
}

// Register registers kind converter with the default registry
func Register(kind desc.Kind, converter conv.Converter) {
	Default().Register(kind, converter)
}

// RegisterType registers go type converter with the default registry
func RegisterType(rType reflect.Type, converter conv.Converter) {
	Default().RegisterType(rType, converter)
}

// RegisterEnum registers enum members of T with the default registry, members are named by String
func RegisterEnum[T fmt.Stringer](members ...T) {
	Default().RegisterEnum(reflect.TypeOf((*T)(nil)).Elem(), EnumMembers(members...)...)
}

// EnumMembers returns enum members named by String
func EnumMembers[T fmt.Stringer](members ...T) []conv.EnumMember {
	ret := make([]conv.EnumMember, 0, len(members))
	for _, member := range members {
		ret = append(ret, conv.EnumMember{Name: member.String(), Value: member})
	}
	return ret
}

// To converts value to T with the default converter
func To[T any](value interface{}) (T, error) {
	return ConvertTo[T](Default(), value)
}

// ToOr converts value to T with the default converter, failures yield defaultValue
func ToOr[T any](value interface{}, defaultValue T) T {
	ret := Default().ConvertQuietly(desc.Of[T](), value, defaultValue)
	if typed, ok := ret.(T); ok {
		return typed
	}
	return defaultValue
}
