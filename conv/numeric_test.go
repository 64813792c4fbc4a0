package conv

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

func TestConvertNumeric(t *testing.T) {
	testCases := []struct {
		description string
		target      *desc.Type
		source      interface{}
		options     []RegistryOption
		expect      interface{}
		code        error
	}{
		{description: "int", target: desc.Of[int](), source: 123, expect: 123},
		{description: "int8 to int", target: desc.Of[int](), source: int8(8), expect: 8},
		{description: "uint to int", target: desc.Of[int](), source: uint(7), expect: 7},
		{description: "float truncates", target: desc.Of[int](), source: 123.5, expect: 123},
		{description: "negative float truncates", target: desc.Of[int](), source: -123.9, expect: -123},
		{description: "string", target: desc.Of[int](), source: "123", expect: 123},
		{description: "trimmed string", target: desc.Of[int](), source: " 42 ", expect: 42},
		{description: "decimal string", target: desc.Of[int](), source: "123.5", expect: 123},
		{description: "hex string", target: desc.Of[int](), source: "0x1F", expect: 31},
		{description: "negative hex string", target: desc.Of[int](), source: "-0x10", expect: -16},
		{description: "exponent", target: desc.Of[int](), source: "1e3", expect: 1000},
		{description: "true", target: desc.Of[int](), source: true, expect: 1},
		{description: "false", target: desc.Of[int](), source: false, expect: 0},
		{description: "pointer source", target: desc.Of[int](), source: ptrOf(9), expect: 9},
		{description: "time", target: desc.Of[int64](), source: time.UnixMilli(1500), expect: int64(1500)},
		{description: "duration", target: desc.Of[int64](), source: 5 * time.Second, expect: int64(5e9)},
		{description: "chinese", target: desc.Of[int](), source: numeral.Chinese("一百二十三"), expect: 123},
		{description: "chinese money", target: desc.Of[float64](), source: numeral.ChineseMoney("壹拾贰元伍角"), expect: 12.5},
		{description: "wrap int8", target: desc.Of[int8](), source: 300, expect: int8(44)},
		{description: "checked int8", target: desc.Of[int8](), source: 300, options: []RegistryOption{withCheckOverflow()}, code: ErrSourceParseFailure},
		{description: "checked int8 fits", target: desc.Of[int8](), source: -128, options: []RegistryOption{withCheckOverflow()}, expect: int8(-128)},
		{description: "wrap uint8", target: desc.Of[uint8](), source: 256, expect: uint8(0)},
		{description: "checked uint8", target: desc.Of[uint8](), source: 256, options: []RegistryOption{withCheckOverflow()}, code: ErrSourceParseFailure},
		{description: "negative unsigned", target: desc.Of[uint](), source: -1, code: ErrSourceParseFailure},
		{description: "negative float unsigned", target: desc.Of[uint32](), source: -1.5, code: ErrSourceParseFailure},
		{description: "max uint64", target: desc.Of[uint64](), source: "18446744073709551615", expect: uint64(math.MaxUint64)},
		{description: "checked uint64 to int", target: desc.Of[int64](), source: uint64(math.MaxUint64), options: []RegistryOption{withCheckOverflow()}, code: ErrSourceParseFailure},
		{description: "float32", target: desc.Of[float32](), source: "1.5", expect: float32(1.5)},
		{description: "float64", target: desc.Of[float64](), source: 2, expect: 2.0},
		{description: "checked float32", target: desc.Of[float32](), source: 1e40, options: []RegistryOption{withCheckOverflow()}, code: ErrSourceParseFailure},
		{description: "pointer target", target: desc.Of[*int](), source: "7", expect: ptrOf(7)},
		{description: "named target", target: desc.Of[time.Month](), source: "3", expect: time.March},
		{description: "empty", target: desc.Of[int](), source: "", code: ErrSourceParseFailure},
		{description: "blank", target: desc.Of[int](), source: "  ", code: ErrSourceParseFailure},
		{description: "hex float", target: desc.Of[float64](), source: "0x1p3", code: ErrSourceParseFailure},
		{description: "digit separators", target: desc.Of[int](), source: "1_000", code: ErrSourceParseFailure},
		{description: "big decimal digit separators", target: desc.Of[*big.Float](), source: "1_000.5", code: ErrSourceParseFailure},
		{description: "trailing garbage", target: desc.Of[int](), source: "12abc", code: ErrSourceParseFailure},
		{description: "nan", target: desc.Of[float64](), source: "NaN", code: ErrSourceParseFailure},
		{description: "inf", target: desc.Of[float64](), source: "inf", code: ErrSourceParseFailure},
		{description: "out of range float", target: desc.Of[int64](), source: 1e20, code: ErrSourceParseFailure},
		{description: "slice", target: desc.Of[int](), source: []int{1}, code: ErrSourceParseFailure},
		{description: "chinese syntax", target: desc.Of[int](), source: numeral.Chinese("一二"), code: ErrNumeralSyntax},
	}
	for _, testCase := range testCases {
		actual, err := convert(testCase.source, testCase.target, testCase.options...)
		if testCase.code != nil {
			assert.True(t, errors.Is(err, testCase.code), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvertNumeric_Big(t *testing.T) {
	actual, err := convert("123456789012345678901234567890", desc.Of[*big.Int]())
	require.Nil(t, err)
	assert.Equal(t, "123456789012345678901234567890", actual.(*big.Int).String())

	actual, err = convert(12.9, desc.Of[big.Int]())
	require.Nil(t, err)
	value := actual.(big.Int)
	assert.Equal(t, "12", value.String())

	actual, err = convert("0.1", desc.Of[*big.Float]())
	require.Nil(t, err)
	assert.Equal(t, "0.1", actual.(*big.Float).Text('f', 1))
	assert.Equal(t, uint(bigPrecision), actual.(*big.Float).Prec())

	actual, err = convert(big.NewInt(42), desc.Of[int32]())
	require.Nil(t, err)
	assert.Equal(t, int32(42), actual)

	hugeInt, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	_, err = convert(hugeInt, desc.Of[int64]())
	assert.True(t, errors.Is(err, ErrSourceParseFailure))

	_, err = convert(math.NaN(), desc.Of[*big.Float]())
	assert.True(t, errors.Is(err, ErrSourceParseFailure))
}

func TestConvertNumeric_Idempotent(t *testing.T) {
	for _, source := range []interface{}{"42", 42.7, true, "0x10"} {
		first, err := convert(source, desc.Of[int]())
		require.Nil(t, err)
		second, err := convert(first, desc.Of[int]())
		require.Nil(t, err)
		assert.Equal(t, first, second)
	}
}
