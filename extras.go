package xconv

import (
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/viant/xconv/codec"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

var (
	maxInt64 = big.NewInt(math.MaxInt64)
	minInt64 = big.NewInt(math.MinInt64)
)

// ToSBC converts half width characters to full width ones, skipped runes are kept
func ToSBC(text string, skip ...rune) string {
	return codec.ToSBC(text, skip...)
}

// ToDBC converts full width characters to half width ones, skipped runes are kept
func ToDBC(text string, skip ...rune) string {
	return codec.ToDBC(text, skip...)
}

// ToHex encodes data as lowercase hex
func ToHex(data []byte) string {
	return codec.EncodeHex(data)
}

// StrToHex encodes text in the charset and returns its hex form
func StrToHex(text, charset string) (string, error) {
	return codec.ToHex(text, charset)
}

// HexToBytes decodes hex text
func HexToBytes(text string) ([]byte, error) {
	ret, err := codec.DecodeHex(text)
	if err != nil {
		return nil, &conv.Error{Code: conv.ErrSourceParseFailure, Target: desc.Of[[]byte](), Source: text, Cause: err}
	}
	return ret, nil
}

// HexToStr decodes hex text into a string in the charset
func HexToStr(text, charset string) (string, error) {
	return codec.HexToString(text, charset)
}

// StrToUnicode escapes text as \uXXXX sequences
func StrToUnicode(text string) string {
	return codec.ToUnicode(text)
}

// UnicodeToStr unescapes \uXXXX sequences
func UnicodeToStr(text string) string {
	return codec.FromUnicode(text)
}

// ConvertCharset re-encodes text from source to destination charset
func ConvertCharset(text, sourceCharset, destCharset string) (string, error) {
	return codec.ConvertCharset(text, sourceCharset, destCharset)
}

// ConvertTime converts an amount of from units to to units, truncating toward zero and saturating at int64 bounds
func ConvertTime(value int64, from, to time.Duration) int64 {
	if from <= 0 || to <= 0 {
		return 0
	}
	ret := new(big.Int).Mul(big.NewInt(value), big.NewInt(int64(from)))
	ret.Quo(ret, big.NewInt(int64(to)))
	switch {
	case ret.Cmp(maxInt64) > 0:
		return math.MaxInt64
	case ret.Cmp(minInt64) < 0:
		return math.MinInt64
	}
	return ret.Int64()
}

// NumberToWord formats number as English amount words
func NumberToWord(number float64) string {
	return numeral.FormatWords(number)
}

// NumberToSimple formats number in compact form, 1200 is rendered as 1.2k
func NumberToSimple(number float64) string {
	return numeral.FormatSimple(number)
}

// NumberToChinese formats number as Chinese numeral text, traditional uses financial glyphs
func NumberToChinese(number float64, traditional bool) string {
	if traditional {
		return string(numeral.NewChineseFinancial(number))
	}
	return string(numeral.NewChinese(number))
}

// ChineseToNumber parses Chinese numeral text
func ChineseToNumber(text string) (int64, error) {
	ret, err := numeral.ChineseToNumber(text)
	if err != nil {
		return 0, &conv.Error{Code: conv.ErrNumeralSyntax, Target: desc.Of[int64](), Source: text, Cause: err}
	}
	return ret, nil
}

// DigitToChinese formats an amount as Chinese money text, 12.5 is rendered as 壹拾贰元伍角
func DigitToChinese(amount float64) string {
	return numeral.FormatMoney(amount)
}

// IntToByte narrows value to a byte
func IntToByte(value int) byte { return codec.IntToByte(value) }

// ByteToUnsignedInt returns byte as an unsigned value
func ByteToUnsignedInt(value byte) int { return codec.ByteToUnsignedInt(value) }

// ShortToBytes encodes value in little endian order
func ShortToBytes(value int16) []byte { return codec.ShortToBytes(value) }

// BytesToShort decodes a little endian short
func BytesToShort(data []byte) (int16, error) { return codec.BytesToShort(data) }

// IntToBytes encodes value in little endian order
func IntToBytes(value int32) []byte { return codec.IntToBytes(value) }

// BytesToInt decodes a little endian int
func BytesToInt(data []byte) (int32, error) { return codec.BytesToInt(data) }

// LongToBytes encodes value in little endian order
func LongToBytes(value int64) []byte { return codec.LongToBytes(value) }

// BytesToLong decodes a little endian long
func BytesToLong(data []byte) (int64, error) { return codec.BytesToLong(data) }

// Wrap returns nullable pointer type for a value type
func Wrap(rType reflect.Type) reflect.Type { return desc.Wrap(rType) }

// Unwrap returns value type for a pointer type
func Unwrap(rType reflect.Type) reflect.Type { return desc.Unwrap(rType) }
