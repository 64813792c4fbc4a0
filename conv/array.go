package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/desc"
)

// convertArray fills a fixed size array, missing elements keep zero values
func convertArray(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	sequence, err := sequenceOf(src, target, session)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	base := target.Base()
	elem := target.Elem()
	ret := reflect.New(base).Elem()
	err = sequence(func(i int, element any) (bool, error) {
		if i >= ret.Len() {
			return false, parseFailure(src, target, fmt.Errorf("too many elements for array of size %v", ret.Len()))
		}
		converted, err := session.Element(element, elem)
		if err != nil {
			return false, err
		}
		ret.Index(i).Set(valueOf(converted, base.Elem()))
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return box(target, ret), nil
}
