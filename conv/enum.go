package conv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/xconv/desc"
)

// EnumMember represents named enum value
type EnumMember struct {
	Name  string
	Value interface{}
}

// EnumConverter converts member names, case insensitive names and ordinals to enum members
type EnumConverter struct {
	rType   reflect.Type
	members []EnumMember
	byName  map[string]int
}

// Members returns enum members in ordinal order
func (e *EnumConverter) Members() []EnumMember {
	return e.members
}

// Convert converts src to enum member
func (e *EnumConverter) Convert(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	member, err := e.member(indirect(src))
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	return box(target, valueOf(member.Value, e.rType)), nil
}

func (e *EnumConverter) member(src interface{}) (*EnumMember, error) {
	value := reflect.ValueOf(src)
	if value.Type() == e.rType {
		for i := range e.members {
			if reflect.DeepEqual(e.members[i].Value, src) {
				return &e.members[i], nil
			}
		}
		return nil, fmt.Errorf("%v is not a member of %v", src, e.rType)
	}
	if value.Kind() == reflect.String {
		text := strings.TrimSpace(value.String())
		if i, ok := e.byName[text]; ok {
			return &e.members[i], nil
		}
		for i := range e.members {
			if strings.EqualFold(e.members[i].Name, text) {
				return &e.members[i], nil
			}
		}
	}
	n, err := numberOf(src, desc.Integer)
	if err != nil {
		return nil, fmt.Errorf("unknown %v member: %v", e.rType, src)
	}
	ordinal, err := n.toInt64(true)
	if err != nil || ordinal < 0 || ordinal >= int64(len(e.members)) {
		return nil, fmt.Errorf("invalid %v ordinal: %v", e.rType, src)
	}
	return &e.members[ordinal], nil
}

// NewEnumConverter creates enum converter, member values have to be of rType
func NewEnumConverter(rType reflect.Type, members ...EnumMember) *EnumConverter {
	ret := &EnumConverter{rType: rType, members: members, byName: make(map[string]int, len(members))}
	for i, member := range members {
		if _, ok := ret.byName[member.Name]; !ok {
			ret.byName[member.Name] = i
		}
	}
	return ret
}
