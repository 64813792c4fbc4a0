package conv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/xconv/desc"
)

var booleanText = map[string]bool{
	"true": true, "false": false,
	"yes": true, "no": false,
	"y": true, "n": false,
	"on": true, "off": false,
	"t": true, "f": false,
	"1": true, "0": false,
	"是": true, "否": false,
	"对": true, "错": false,
	"真": true, "假": false,
}

func convertBoolean(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	value, err := booleanOf(src)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	return box(target, reflect.ValueOf(value)), nil
}

func booleanOf(src interface{}) (bool, error) {
	src = indirect(src)
	if value := reflect.ValueOf(src); value.Kind() == reflect.Bool {
		return value.Bool(), nil
	}
	if value := reflect.ValueOf(src); value.Kind() == reflect.String {
		text := strings.ToLower(strings.TrimSpace(value.String()))
		if ret, ok := booleanText[text]; ok {
			return ret, nil
		}
		n, err := parseNumber(text, desc.Double)
		if err != nil {
			return false, fmt.Errorf("invalid boolean: %q", value.String())
		}
		return !n.isZero(), nil
	}
	n, err := numberOf(src, desc.Double)
	if err != nil {
		return false, err
	}
	return !n.isZero(), nil
}
