package conv

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/xconv/codec"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	hexType      = reflect.TypeOf(codec.Hex(""))
	chineseType  = reflect.TypeOf(numeral.Chinese(""))
	financeType  = reflect.TypeOf(numeral.ChineseFinancial(""))
	moneyType    = reflect.TypeOf(numeral.ChineseMoney(""))
	wordsType    = reflect.TypeOf(numeral.Words(""))
)

type (
	// Registry resolves converters for target types
	Registry struct {
		mux     sync.Mutex
		table   atomic.Pointer[table]
		options Options
		logger  logrus.FieldLogger
	}

	table struct {
		kinds map[desc.Kind]Converter
		types map[reflect.Type]Converter
		enums map[reflect.Type]*EnumConverter
	}

	// RegistryOption represents registry option
	RegistryOption func(r *Registry)
)

// WithOptions sets converter options
func WithOptions(options Options) RegistryOption {
	return func(r *Registry) {
		r.options = options
	}
}

// WithLogger sets registry logger
func WithLogger(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// built-in converters, populated in init since they dispatch elements back through Lookup
var (
	builtins     map[desc.Kind]Converter
	builtinTypes map[reflect.Type]Converter
)

func init() {
	numeric := ConverterFunc(convertNumeric)
	builtins = map[desc.Kind]Converter{
		desc.Boolean:    ConverterFunc(convertBoolean),
		desc.Character:  ConverterFunc(convertCharacter),
		desc.Byte:       numeric,
		desc.Short:      numeric,
		desc.Integer:    numeric,
		desc.Long:       numeric,
		desc.Float:      numeric,
		desc.Double:     numeric,
		desc.BigInteger: numeric,
		desc.BigDecimal: numeric,
		desc.String:     ConverterFunc(convertString),
		desc.Temporal:   ConverterFunc(convertTemporal),
		desc.Array:      ConverterFunc(convertArray),
		desc.Collection: ConverterFunc(convertCollection),
		desc.Map:        ConverterFunc(convertMap),
		desc.Bean:       ConverterFunc(convertBean),
		desc.Unknown:    ConverterFunc(convertIdentity),
	}
	text := ConverterFunc(convertNumeral)
	builtinTypes = map[reflect.Type]Converter{
		durationType: ConverterFunc(convertDuration),
		hexType:      ConverterFunc(convertHex),
		chineseType:  text,
		financeType:  text,
		moneyType:    text,
		wordsType:    text,
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns process wide registry
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with built-in converters
func NewRegistry(opts ...RegistryOption) *Registry {
	ret := &Registry{options: DefaultOptions()}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.options.Init(); err != nil {
		ret.options = DefaultOptions()
		_ = ret.options.Init()
	}
	if ret.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		ret.logger = logger
	}
	ret.table.Store(&table{
		kinds: map[desc.Kind]Converter{},
		types: map[reflect.Type]Converter{},
		enums: map[reflect.Type]*EnumConverter{},
	})
	return ret
}

// Options returns registry options
func (r *Registry) Options() *Options {
	return &r.options
}

// Logger returns registry logger
func (r *Registry) Logger() logrus.FieldLogger {
	return r.logger
}

// Register registers converter overriding built-in one for the kind
func (r *Registry) Register(kind desc.Kind, converter Converter) {
	r.update(func(t *table) {
		t.kinds[kind] = converter
	})
	r.logger.WithFields(logrus.Fields{"kind": kind.String()}).Debug("registered kind converter")
}

// RegisterType registers converter for a go type, pointer types register their base type
func (r *Registry) RegisterType(rType reflect.Type, converter Converter) {
	rType = desc.Unwrap(rType)
	r.update(func(t *table) {
		t.types[rType] = converter
	})
	r.logger.WithFields(logrus.Fields{"type": rType.String()}).Debug("registered type converter")
}

// RegisterEnum registers enum members for a go type
func (r *Registry) RegisterEnum(rType reflect.Type, members ...EnumMember) *EnumConverter {
	rType = desc.Unwrap(rType)
	converter := NewEnumConverter(rType, members...)
	r.update(func(t *table) {
		t.enums[rType] = converter
	})
	r.logger.WithFields(logrus.Fields{"type": rType.String(), "members": len(members)}).Debug("registered enum")
	return converter
}

// Enum returns registered enum converter
func (r *Registry) Enum(rType reflect.Type) (*EnumConverter, bool) {
	ret, ok := r.table.Load().enums[desc.Unwrap(rType)]
	return ret, ok
}

// Lookup returns converter for target type
func (r *Registry) Lookup(target *desc.Type) (Converter, error) {
	current := r.table.Load()
	if converter, ok := current.types[target.Type()]; ok {
		return converter, nil
	}
	base := target.Base()
	if converter, ok := current.types[base]; ok {
		return converter, nil
	}
	if converter, ok := current.kinds[target.Kind()]; ok {
		return converter, nil
	}
	if converter, ok := current.enums[base]; ok {
		return converter, nil
	}
	if converter, ok := builtinTypes[base]; ok {
		return converter, nil
	}
	switch target.Kind() {
	case desc.Enum, desc.Invalid:
		return nil, fmt.Errorf("no converter for %v", target.Type())
	case desc.Collection:
		if target.Shape() == desc.ShapeBinary {
			return ConverterFunc(convertBinary), nil
		}
	}
	if converter, ok := builtins[target.Kind()]; ok {
		return converter, nil
	}
	if base.Kind() == reflect.Struct {
		return builtins[desc.Bean], nil
	}
	return nil, fmt.Errorf("no converter for %v", target.Type())
}

func (r *Registry) update(fn func(t *table)) {
	r.mux.Lock()
	defer r.mux.Unlock()
	current := r.table.Load()
	next := &table{
		kinds: make(map[desc.Kind]Converter, len(current.kinds)+1),
		types: make(map[reflect.Type]Converter, len(current.types)+1),
		enums: make(map[reflect.Type]*EnumConverter, len(current.enums)+1),
	}
	for k, v := range current.kinds {
		next.kinds[k] = v
	}
	for k, v := range current.types {
		next.types[k] = v
	}
	for k, v := range current.enums {
		next.enums[k] = v
	}
	fn(next)
	r.table.Store(next)
}
