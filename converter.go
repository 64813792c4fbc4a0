package xconv

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/desc"
)

// Observer observes completed conversions
type Observer interface {
	Observe(target *desc.Type, err error, elapsed time.Duration)
}

// Converter converts values to target types
type Converter struct {
	registry *conv.Registry
	options  *conv.Options
	logger   logrus.FieldLogger
	observer Observer
}

var (
	defaultConverter     *Converter
	defaultConverterOnce sync.Once
)

// Default returns process wide converter backed by conv.DefaultRegistry
func Default() *Converter {
	defaultConverterOnce.Do(func() {
		defaultConverter = New(WithRegistry(conv.DefaultRegistry()))
	})
	return defaultConverter
}

// New creates a converter with its own registry unless WithRegistry is used
func New(opts ...Option) *Converter {
	ret := &Converter{}
	Options(opts).Apply(ret)
	if ret.registry == nil {
		var registryOptions []conv.RegistryOption
		if ret.options != nil {
			registryOptions = append(registryOptions, conv.WithOptions(*ret.options))
		}
		if ret.logger != nil {
			registryOptions = append(registryOptions, conv.WithLogger(ret.logger))
		}
		ret.registry = conv.NewRegistry(registryOptions...)
	}
	if ret.logger == nil {
		ret.logger = ret.registry.Logger()
	}
	return ret
}

// Registry returns converter registry
func (c *Converter) Registry() *conv.Registry {
	return c.registry
}

// Convert converts value to target, target is either reflect.Type or *desc.Type
func (c *Converter) Convert(target interface{}, value interface{}) (interface{}, error) {
	return c.ConvertWithCheck(target, value, nil, false)
}

// ConvertQuietly converts value to target, it returns defaultValue instead of failing
func (c *Converter) ConvertQuietly(target interface{}, value interface{}, defaultValue interface{}) interface{} {
	ret, _ := c.ConvertWithCheck(target, value, defaultValue, true)
	return ret
}

// ConvertWithCheck converts value to target, in quiet mode nil values and failures yield defaultValue
// and nested element failures yield element zero values
func (c *Converter) ConvertWithCheck(target interface{}, value interface{}, defaultValue interface{}, quiet bool) (interface{}, error) {
	started := time.Now()
	targetType, err := targetOf(target)
	var ret interface{}
	if err == nil {
		if quiet && isNil(value) {
			return defaultValue, nil
		}
		ret, err = conv.NewSession(c.registry, quiet).Convert(value, targetType)
	}
	if c.observer != nil {
		c.observer.Observe(targetType, err, time.Since(started))
	}
	if err != nil {
		if quiet {
			c.logger.WithFields(logrus.Fields{
				"target": fmt.Sprint(targetType),
				"error":  err.Error(),
			}).Debug("returned default value")
			return defaultValue, nil
		}
		return nil, err
	}
	return ret, nil
}

// Into converts value into a value pointed by dest
func (c *Converter) Into(value interface{}, dest interface{}) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() {
		return fmt.Errorf("expected non nil pointer destination, got %T", dest)
	}
	elemType := destValue.Type().Elem()
	ret, err := c.Convert(desc.Resolve(elemType), value)
	if err != nil {
		return err
	}
	if ret == nil {
		destValue.Elem().Set(reflect.Zero(elemType))
		return nil
	}
	destValue.Elem().Set(reflect.ValueOf(ret))
	return nil
}

// Register registers converter overriding built-in one for the kind
func (c *Converter) Register(kind desc.Kind, converter conv.Converter) {
	c.registry.Register(kind, converter)
}

// RegisterType registers converter for a go type
func (c *Converter) RegisterType(rType reflect.Type, converter conv.Converter) {
	c.registry.RegisterType(rType, converter)
}

// RegisterEnum registers enum members for a go type
func (c *Converter) RegisterEnum(rType reflect.Type, members ...conv.EnumMember) {
	c.registry.RegisterEnum(rType, members...)
}

// ConvertTo converts value to T with the converter
func ConvertTo[T any](c *Converter, value interface{}) (T, error) {
	var zero T
	ret, err := c.Convert(desc.Of[T](), value)
	if err != nil {
		return zero, err
	}
	if typed, ok := ret.(T); ok {
		return typed, nil
	}
	return zero, nil
}

func targetOf(target interface{}) (*desc.Type, error) {
	switch actual := target.(type) {
	case *desc.Type:
		if actual != nil {
			return actual, nil
		}
	case reflect.Type:
		if actual != nil {
			return desc.Resolve(actual), nil
		}
	}
	return nil, &conv.Error{Code: conv.ErrUnsupportedTargetType, Reason: fmt.Sprintf("invalid target %T", target)}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rValue := reflect.ValueOf(value); rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rValue.IsNil()
	}
	return false
}
