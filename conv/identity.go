package conv

import (
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"
	"github.com/viant/xconv/desc"
)

// convertIdentity passes values through to unknown targets, pointer data is deep copied with ClonePointerData
func convertIdentity(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	rType, srcType := target.Type(), reflect.TypeOf(src)
	switch {
	case rType.Kind() == reflect.Interface:
		if !srcType.Implements(rType) {
			return nil, parseFailure(src, target, fmt.Errorf("%T does not implement %v", src, rType))
		}
	case srcType != rType:
		if !srcType.ConvertibleTo(rType) {
			return nil, parseFailure(src, target, fmt.Errorf("%T is not convertible to %v", src, rType))
		}
		src = reflect.ValueOf(src).Convert(rType).Interface()
	}
	if session.Options.ClonePointerData && reflect.TypeOf(src).Kind() == reflect.Ptr {
		return deepcopy.Copy(src), nil
	}
	return src, nil
}
