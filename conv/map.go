package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/visitor"
)

// convertMap converts maps, structs and flat key value sequences, keys and values are converted independently
func convertMap(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	pairs, err := visitor.PairsOf(src, session.Options.TagName, session.delimiter())
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	base := target.Base()
	keyType, valueType := target.Key(), target.Value()
	ret := reflect.MakeMap(base)
	err = pairs(func(key any, value any) (bool, error) {
		convertedKey, err := session.Element(key, keyType)
		if err != nil {
			return false, err
		}
		if convertedKey != nil && !reflect.TypeOf(convertedKey).Comparable() {
			return false, newError(ErrUnsupportedTargetType, key, target, nil, fmt.Sprintf("%T is not comparable", convertedKey))
		}
		convertedValue, err := session.Element(value, valueType)
		if err != nil {
			return false, err
		}
		ret.SetMapIndex(valueOf(convertedKey, base.Key()), valueOf(convertedValue, base.Elem()))
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return box(target, ret), nil
}
