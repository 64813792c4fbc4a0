package conv

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/xconv/codec"
	"github.com/viant/xconv/desc"
)

func convertString(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	text, err := stringOf(src, session)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	return box(target, reflect.ValueOf(text)), nil
}

func stringOf(src interface{}, session *Session) (string, error) {
	switch actual := indirect(src).(type) {
	case string:
		return actual, nil
	case []byte:
		return codec.Decode(actual, session.Options.Charset)
	case time.Time:
		return actual.In(session.Options.TimeLocation()).Format(session.Options.DateLayout()), nil
	case big.Int:
		return actual.String(), nil
	case big.Float:
		return actual.Text('f', -1), nil
	}
	switch actual := src.(type) {
	case error:
		return actual.Error(), nil
	case fmt.Stringer:
		return actual.String(), nil
	}
	src = indirect(src)
	value := reflect.ValueOf(src)
	switch value.Kind() {
	case reflect.String:
		return value.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(value.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(value.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(value.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64), nil
	case reflect.Slice, reflect.Array:
		return joinElements(value, session)
	}
	return fmt.Sprint(src), nil
}

func joinElements(value reflect.Value, session *Session) (string, error) {
	target := desc.Resolve(reflect.TypeOf(""))
	elements := make([]string, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		element, err := session.Element(value.Index(i).Interface(), target)
		if err != nil {
			return "", err
		}
		elements = append(elements, element.(string))
	}
	return strings.Join(elements, ","), nil
}
