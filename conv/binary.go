package conv

import (
	"reflect"

	"github.com/viant/xconv/codec"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/visitor"
)

var byteType = desc.Resolve(reflect.TypeOf(byte(0)))

// convertBinary converts text with configured charset, hex text and numeric sequences to bytes
func convertBinary(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	data, err := bytesOf(src, session)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	return box(target, reflect.ValueOf(data)), nil
}

func bytesOf(src interface{}, session *Session) ([]byte, error) {
	src = indirect(src)
	switch actual := src.(type) {
	case []byte:
		return append([]byte{}, actual...), nil
	case codec.Hex:
		return actual.Bytes()
	case string:
		return codec.Encode(actual, session.Options.Charset)
	}
	value := reflect.ValueOf(src)
	switch value.Kind() {
	case reflect.String:
		return codec.Encode(value.String(), session.Options.Charset)
	case reflect.Slice:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte{}, value.Bytes()...), nil
		}
	}
	sequence, err := visitor.SequenceOf(src, session.delimiter())
	if err != nil {
		return nil, err
	}
	var ret = []byte{}
	err = sequence(func(_ int, element any) (bool, error) {
		converted, err := session.Element(element, byteType)
		if err != nil {
			return false, err
		}
		ret = append(ret, converted.(byte))
		return true, nil
	})
	return ret, err
}

// convertHex converts bytes and text to lowercase hex, hex sources are validated
func convertHex(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	var ret codec.Hex
	switch actual := indirect(src).(type) {
	case codec.Hex:
		data, err := actual.Bytes()
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		ret = codec.Hex(codec.EncodeHex(data))
	case []byte:
		ret = codec.Hex(codec.EncodeHex(actual))
	default:
		text, err := stringOf(actual, session)
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		encoded, err := codec.ToHex(text, session.Options.Charset)
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		ret = codec.Hex(encoded)
	}
	return box(target, reflect.ValueOf(ret)), nil
}
