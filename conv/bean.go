package conv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/visitor"
	"github.com/viant/xunsafe"
)

// convertBean populates a new struct from map keys or source struct fields
func convertBean(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	base := target.Base()
	actual := indirect(src)
	if reflect.TypeOf(actual) == base {
		if session.Options.ClonePointerData {
			actual = deepcopy.Copy(actual)
		}
		return box(target, reflect.ValueOf(actual)), nil
	}
	switch reflect.ValueOf(actual).Kind() {
	case reflect.Map, reflect.Struct:
	default:
		if session.IsNested() {
			return nil, newError(ErrAmbiguousGenericElement, src, target, nil, "bean element from scalar")
		}
		return nil, parseFailure(src, target, fmt.Errorf("expected map or struct, got %T", src))
	}
	pairs, err := visitor.PairsOf(actual, session.Options.TagName, session.delimiter())
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	ptr := reflect.New(base)
	structPtr := xunsafe.AsPointer(ptr.Interface())
	fields := newFieldIndex(visitor.FieldsOf(base, session.Options.TagName), session.Options.CaseSensitive)
	err = pairs(func(key any, value any) (bool, error) {
		name, ok := key.(string)
		if !ok {
			name = fmt.Sprint(key)
		}
		field := fields.match(name)
		if field == nil {
			return true, nil
		}
		fieldType := desc.Resolve(field.Type)
		var converted interface{}
		err := session.WithTimeLayout(field.TimeLayout, func() (err error) {
			converted, err = session.Element(value, fieldType)
			return err
		})
		if err != nil {
			return false, err
		}
		if converted == nil {
			return true, nil
		}
		if field.Type.Kind() == reflect.Interface {
			reflect.NewAt(field.Type, field.Pointer(structPtr)).Elem().Set(reflect.ValueOf(converted))
			return true, nil
		}
		field.SetValue(structPtr, converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if target.IsPointer() {
		return ptr.Interface(), nil
	}
	return ptr.Elem().Interface(), nil
}

type fieldIndex struct {
	byKey         map[string]*visitor.Field
	byFoldedKey   map[string]*visitor.Field
	caseSensitive bool
}

func newFieldIndex(fields []*visitor.Field, caseSensitive bool) *fieldIndex {
	ret := &fieldIndex{
		byKey:         make(map[string]*visitor.Field, 2*len(fields)),
		byFoldedKey:   make(map[string]*visitor.Field, 2*len(fields)),
		caseSensitive: caseSensitive,
	}
	for _, field := range fields {
		ret.add(field.Key, field)
	}
	for _, field := range fields {
		ret.add(field.Name, field)
	}
	return ret
}

func (i *fieldIndex) add(key string, field *visitor.Field) {
	if _, ok := i.byKey[key]; !ok {
		i.byKey[key] = field
	}
	folded := strings.ToLower(key)
	if _, ok := i.byFoldedKey[folded]; !ok {
		i.byFoldedKey[folded] = field
	}
}

// match finds field by tag key or name, then case insensitive, then by converting snake or kebab keys to field names
func (i *fieldIndex) match(key string) *visitor.Field {
	if field, ok := i.byKey[key]; ok {
		return field
	}
	if !i.caseSensitive {
		if field, ok := i.byFoldedKey[strings.ToLower(key)]; ok {
			return field
		}
	}
	caseFormat := text.DetectCaseFormat(key)
	if !caseFormat.IsDefined() {
		return nil
	}
	name := caseFormat.Format(key, text.CaseFormatUpperCamel)
	if field, ok := i.byKey[name]; ok {
		return field
	}
	if !i.caseSensitive {
		return i.byFoldedKey[strings.ToLower(name)]
	}
	return nil
}
