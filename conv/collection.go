package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/visitor"
)

// convertCollection builds a new slice or set instance converting every element of the source sequence
func convertCollection(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	sequence, err := sequenceOf(src, target, session)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	base := target.Base()
	elem := target.Elem()
	switch base.Kind() {
	case reflect.Slice:
		ret := reflect.MakeSlice(base, 0, 0)
		err = sequence(func(_ int, element any) (bool, error) {
			converted, err := session.Element(element, elem)
			if err != nil {
				return false, err
			}
			ret = reflect.Append(ret, valueOf(converted, base.Elem()))
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		return box(target, ret), nil
	case reflect.Map:
		ret := reflect.MakeMap(base)
		member := reflect.Zero(base.Elem())
		if base.Elem().Kind() == reflect.Bool {
			member = reflect.ValueOf(true).Convert(base.Elem())
		}
		err = sequence(func(_ int, element any) (bool, error) {
			converted, err := session.Element(element, elem)
			if err != nil {
				return false, err
			}
			if converted != nil && !reflect.TypeOf(converted).Comparable() {
				return false, newError(ErrUnsupportedTargetType, element, target, nil, fmt.Sprintf("%T is not comparable", converted))
			}
			ret.SetMapIndex(valueOf(converted, base.Key()), member)
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		return box(target, ret), nil
	}
	return nil, unsupported(src, target)
}

// sequenceOf returns element visitor, text is split into runes for character elements
func sequenceOf(src interface{}, target *desc.Type, session *Session) (visitor.Visitor[int, any], error) {
	if target.Elem().Kind() == desc.Character {
		if value := reflect.ValueOf(indirect(src)); value.Kind() == reflect.String {
			runes := []rune(value.String())
			return func(f func(key int, element any) (bool, error)) error {
				for i, r := range runes {
					continueVisit, err := f(i, string(r))
					if err != nil || !continueVisit {
						return err
					}
				}
				return nil
			}, nil
		}
	}
	return visitor.SequenceOf(src, session.delimiter())
}
