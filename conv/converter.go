package conv

import (
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/viant/xconv/desc"
)

// Converter converts a source value into the target type.
// Returned value dynamic type is exactly target.Type()
type Converter interface {
	Convert(src interface{}, target *desc.Type, session *Session) (interface{}, error)
}

// ConverterFunc adapts a function to Converter
type ConverterFunc func(src interface{}, target *desc.Type, session *Session) (interface{}, error)

// Convert calls f
func (f ConverterFunc) Convert(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	return f(src, target, session)
}

// Session carries registry and options of a single top level conversion to nested element conversions
type Session struct {
	Registry *Registry
	Options  *Options
	// Quiet substitutes element zero values for failed nested conversions
	Quiet  bool
	Logger logrus.FieldLogger

	nesting    int
	timeLayout string
}

// NewSession creates a session
func NewSession(registry *Registry, quiet bool) *Session {
	return &Session{
		Registry: registry,
		Options:  registry.Options(),
		Quiet:    quiet,
		Logger:   registry.Logger(),
	}
}

// Convert converts src to target; nil source yields target zero value, or ErrNullNotAllowed for primitives
func (s *Session) Convert(src interface{}, target *desc.Type) (interface{}, error) {
	if target == nil {
		return nil, unsupported(src, target)
	}
	if isNil(src) {
		if target.IsPrimitive() {
			return nil, newError(ErrNullNotAllowed, src, target, nil, "")
		}
		return target.Zero(), nil
	}
	converter, err := s.Registry.Lookup(target)
	if err != nil {
		return nil, newError(ErrUnsupportedTargetType, src, target, nil, err.Error())
	}
	return converter.Convert(src, target, s)
}

// Element converts a container element, key, value or field.
// In quiet session failures are logged and replaced by the target zero value
func (s *Session) Element(src interface{}, target *desc.Type) (interface{}, error) {
	s.nesting++
	defer func() { s.nesting-- }()
	ret, err := s.Convert(src, target)
	if err != nil && s.Quiet {
		s.Logger.WithFields(logrus.Fields{
			"kind":  target.Kind().String(),
			"type":  target.Type().String(),
			"error": err.Error(),
		}).Debug("substituted element zero value")
		return target.Zero(), nil
	}
	return ret, err
}

// IsNested returns true while converting container elements
func (s *Session) IsNested() bool {
	return s.nesting > 0
}

// WithTimeLayout runs fn with a field specific time layout tried before the configured ones
func (s *Session) WithTimeLayout(layout string, fn func() error) error {
	if layout == "" {
		return fn()
	}
	prev := s.timeLayout
	s.timeLayout = layout
	defer func() { s.timeLayout = prev }()
	return fn()
}

func (s *Session) delimiter() string {
	return s.Options.Delimiter
}

// box returns value as target type, allocating a pointer for pointer targets
func box(target *desc.Type, value reflect.Value) interface{} {
	base := target.Base()
	if value.Type() != base && value.Type().ConvertibleTo(base) {
		value = value.Convert(base)
	}
	if target.IsPointer() {
		ptr := reflect.New(base)
		ptr.Elem().Set(value)
		return ptr.Interface()
	}
	return value.Interface()
}

// valueOf returns value assignable to rType, nil yields zero value
func valueOf(value interface{}, rType reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(rType)
	}
	ret := reflect.ValueOf(value)
	if ret.Type() != rType && ret.Type().ConvertibleTo(rType) && rType.Kind() != reflect.Interface {
		return ret.Convert(rType)
	}
	return ret
}

// indirect dereferences non nil pointers
func indirect(src interface{}) interface{} {
	for {
		value := reflect.ValueOf(src)
		if value.Kind() != reflect.Ptr || value.IsNil() {
			return src
		}
		src = value.Elem().Interface()
	}
}

func isNil(src interface{}) bool {
	if src == nil {
		return true
	}
	value := reflect.ValueOf(src)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	}
	return false
}
