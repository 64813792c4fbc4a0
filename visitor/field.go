package visitor

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

const maxEmbedding = 8

// Field represents an exported struct field, embedded struct fields are promoted with adjusted offset
type Field struct {
	*xunsafe.Field
	//Key is the field name resolved from struct tags
	Key string
	//Explicit is set when Key comes from a tag
	Explicit   bool
	TimeLayout string
}

type fieldsKey struct {
	rType   reflect.Type
	tagName string
}

var fieldCache = NewSyncMap[fieldsKey, []*Field]()

// FieldsOf returns struct fields addressable from a pointer to rType
func FieldsOf(rType reflect.Type, tagName string) []*Field {
	return fieldCache.Load(fieldsKey{rType: rType, tagName: tagName}, func() []*Field {
		return appendFields(nil, rType, 0, tagName, 0)
	})
}

func appendFields(fields []*Field, rType reflect.Type, offset uintptr, tagName string, depth int) []*Field {
	var embedded []reflect.StructField
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		key, explicit, ignore := tagKey(structField, tagName)
		if ignore {
			continue
		}
		formatTag, _ := format.Parse(structField.Tag)
		if formatTag != nil && formatTag.Ignore {
			continue
		}
		if structField.Anonymous && structField.Type.Kind() == reflect.Struct && !explicit {
			if depth < maxEmbedding {
				embedded = append(embedded, structField)
			}
			continue
		}
		if structField.PkgPath != "" {
			continue
		}
		structField.Offset += offset
		field := &Field{Field: xunsafe.NewField(structField), Key: key, Explicit: explicit}
		if formatTag != nil {
			if !explicit && formatTag.Name != "" {
				field.Key, field.Explicit = formatTag.Name, true
			}
			field.TimeLayout = formatTag.TimeLayout
			if field.TimeLayout == "" && formatTag.DateFormat != "" {
				field.TimeLayout = ftime.DateFormatToTimeLayout(formatTag.DateFormat)
			}
		}
		fields = append(fields, field)
	}
	for _, structField := range embedded {
		promoted := appendFields(nil, structField.Type, offset+structField.Offset, tagName, depth+1)
		for _, candidate := range promoted {
			if hasKey(fields, candidate.Key) {
				continue
			}
			fields = append(fields, candidate)
		}
	}
	return fields
}

func hasKey(fields []*Field, key string) bool {
	for _, field := range fields {
		if field.Key == key {
			return true
		}
	}
	return false
}

func tagKey(field reflect.StructField, tagName string) (string, bool, bool) {
	if tagName == "" {
		return field.Name, false, false
	}
	tag, ok := field.Tag.Lookup(tagName)
	if !ok {
		return field.Name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true, false
	}
	return field.Name, false, false
}
