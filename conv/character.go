package conv

import (
	"errors"
	"reflect"
	"unicode/utf8"

	"github.com/viant/xconv/desc"
)

var errEmptyCharacter = errors.New("empty character")

func convertCharacter(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	value, err := characterOf(src)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	ret := reflect.New(target.Base()).Elem()
	switch ret.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		ret.SetInt(int64(value))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		ret.SetUint(uint64(value))
	default:
		return nil, unsupported(src, target)
	}
	return box(target, ret), nil
}

// characterOf returns the first rune of text, code point of numbers, or '1' / '0' for booleans
func characterOf(src interface{}) (rune, error) {
	src = indirect(src)
	value := reflect.ValueOf(src)
	switch value.Kind() {
	case reflect.String:
		text := value.String()
		if text == "" {
			return 0, errEmptyCharacter
		}
		r, _ := utf8.DecodeRuneInString(text)
		return r, nil
	case reflect.Bool:
		if value.Bool() {
			return '1', nil
		}
		return '0', nil
	}
	n, err := numberOf(src, desc.Integer)
	if err != nil {
		return 0, err
	}
	i, err := n.toInt64(true)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > utf8.MaxRune {
		return 0, errOutOfRange
	}
	return rune(i), nil
}
