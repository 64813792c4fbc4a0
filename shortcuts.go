package xconv

import (
	"math/big"
	"reflect"
	"time"

	"github.com/viant/xconv/desc"
)

var (
	runeSliceType = desc.New(desc.Collection, reflect.TypeOf([]rune{}), desc.Rune)
)

func quietly[T any](target *desc.Type, value interface{}, defaultValue []T) T {
	var fallback T
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	ret := Default().ConvertQuietly(target, value, fallback)
	if typed, ok := ret.(T); ok {
		return typed
	}
	return fallback
}

func strictly[T any](target *desc.Type, value interface{}) (T, error) {
	var zero T
	ret, err := Default().Convert(target, value)
	if err != nil {
		return zero, err
	}
	if typed, ok := ret.(T); ok {
		return typed, nil
	}
	return zero, nil
}

// ToStr converts value to string, failures yield optional default
func ToStr(value interface{}, defaultValue ...string) string {
	return quietly(desc.Of[string](), value, defaultValue)
}

// ToChar converts value to a character, failures yield optional default
func ToChar(value interface{}, defaultValue ...rune) rune {
	return quietly(desc.Rune, value, defaultValue)
}

// ToByte converts value to byte, failures yield optional default
func ToByte(value interface{}, defaultValue ...byte) byte {
	return quietly(desc.Of[byte](), value, defaultValue)
}

// ToShort converts value to int16, failures yield optional default
func ToShort(value interface{}, defaultValue ...int16) int16 {
	return quietly(desc.Of[int16](), value, defaultValue)
}

// ToInt converts value to int, failures yield optional default
func ToInt(value interface{}, defaultValue ...int) int {
	return quietly(desc.Of[int](), value, defaultValue)
}

// ToLong converts value to int64, failures yield optional default
func ToLong(value interface{}, defaultValue ...int64) int64 {
	return quietly(desc.Of[int64](), value, defaultValue)
}

// ToFloat converts value to float32, failures yield optional default
func ToFloat(value interface{}, defaultValue ...float32) float32 {
	return quietly(desc.Of[float32](), value, defaultValue)
}

// ToDouble converts value to float64, failures yield optional default
func ToDouble(value interface{}, defaultValue ...float64) float64 {
	return quietly(desc.Of[float64](), value, defaultValue)
}

// ToBool converts value to bool, failures yield optional default
func ToBool(value interface{}, defaultValue ...bool) bool {
	return quietly(desc.Of[bool](), value, defaultValue)
}

// ToBigInt converts value to *big.Int, failures yield optional default
func ToBigInt(value interface{}, defaultValue ...*big.Int) *big.Int {
	return quietly(desc.Of[*big.Int](), value, defaultValue)
}

// ToBigDecimal converts value to *big.Float, failures yield optional default
func ToBigDecimal(value interface{}, defaultValue ...*big.Float) *big.Float {
	return quietly(desc.Of[*big.Float](), value, defaultValue)
}

// ToDate converts value to time.Time, failures yield optional default
func ToDate(value interface{}, defaultValue ...time.Time) time.Time {
	return quietly(desc.Of[time.Time](), value, defaultValue)
}

// ToDuration converts value to time.Duration, failures yield optional default
func ToDuration(value interface{}, defaultValue ...time.Duration) time.Duration {
	return quietly(desc.Of[time.Duration](), value, defaultValue)
}

// ToEnum converts value to a registered enum T, failures yield optional default
func ToEnum[T any](value interface{}, defaultValue ...T) T {
	return quietly(desc.Of[T](), value, defaultValue)
}

// ToList converts value to a slice of T
func ToList[T any](value interface{}) ([]T, error) {
	return strictly[[]T](desc.Of[[]T](), value)
}

// ToSet converts value to a set of T
func ToSet[T comparable](value interface{}) (map[T]struct{}, error) {
	return strictly[map[T]struct{}](desc.Of[map[T]struct{}](), value)
}

// ToMap converts value to a map of K to V
func ToMap[K comparable, V any](value interface{}) (map[K]V, error) {
	return strictly[map[K]V](desc.Of[map[K]V](), value)
}

// ToStrArray converts value to []string
func ToStrArray(value interface{}) ([]string, error) {
	return ToList[string](value)
}

// ToIntArray converts value to []int
func ToIntArray(value interface{}) ([]int, error) {
	return ToList[int](value)
}

// ToLongArray converts value to []int64
func ToLongArray(value interface{}) ([]int64, error) {
	return ToList[int64](value)
}

// ToShortArray converts value to []int16
func ToShortArray(value interface{}) ([]int16, error) {
	return ToList[int16](value)
}

// ToDoubleArray converts value to []float64
func ToDoubleArray(value interface{}) ([]float64, error) {
	return ToList[float64](value)
}

// ToFloatArray converts value to []float32
func ToFloatArray(value interface{}) ([]float32, error) {
	return ToList[float32](value)
}

// ToBoolArray converts value to []bool
func ToBoolArray(value interface{}) ([]bool, error) {
	return ToList[bool](value)
}

// ToByteArray converts value to []byte, text is encoded with the configured charset
func ToByteArray(value interface{}) ([]byte, error) {
	return ToList[byte](value)
}

// ToCharArray converts value to characters
func ToCharArray(value interface{}) ([]rune, error) {
	return strictly[[]rune](runeSliceType, value)
}
