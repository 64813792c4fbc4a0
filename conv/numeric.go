package conv

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

const bigPrecision = 256

var (
	bigIntType     = reflect.TypeOf(big.Int{})
	bigFloatType   = reflect.TypeOf(big.Float{})
	errEmptyNumber = errors.New("empty number")
	errOutOfRange  = errors.New("value out of range")
)

type numberForm int

const (
	signedForm numberForm = iota
	unsignedForm
	floatForm
	bigIntForm
	bigFloatForm
)

// number represents numeric source value before narrowing to the target
type number struct {
	form     numberForm
	i        int64
	u        uint64
	f        float64
	bigInt   *big.Int
	bigFloat *big.Float
}

func (n *number) float() float64 {
	switch n.form {
	case signedForm:
		return float64(n.i)
	case unsignedForm:
		return float64(n.u)
	case bigIntForm:
		ret, _ := new(big.Float).SetInt(n.bigInt).Float64()
		return ret
	case bigFloatForm:
		ret, _ := n.bigFloat.Float64()
		return ret
	}
	return n.f
}

func (n *number) isZero() bool {
	switch n.form {
	case signedForm:
		return n.i == 0
	case unsignedForm:
		return n.u == 0
	case bigIntForm:
		return n.bigInt.Sign() == 0
	case bigFloatForm:
		return n.bigFloat.Sign() == 0
	}
	return n.f == 0
}

func (n *number) toBigFloat() (*big.Float, error) {
	ret := new(big.Float).SetPrec(bigPrecision)
	switch n.form {
	case signedForm:
		return ret.SetInt64(n.i), nil
	case unsignedForm:
		return ret.SetUint64(n.u), nil
	case bigIntForm:
		return ret.SetInt(n.bigInt), nil
	case bigFloatForm:
		return ret.Set(n.bigFloat), nil
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return nil, errOutOfRange
	}
	return ret.SetFloat64(n.f), nil
}

func (n *number) toBigInt() (*big.Int, error) {
	switch n.form {
	case signedForm:
		return big.NewInt(n.i), nil
	case unsignedForm:
		return new(big.Int).SetUint64(n.u), nil
	case bigIntForm:
		return new(big.Int).Set(n.bigInt), nil
	}
	value, err := n.toBigFloat()
	if err != nil {
		return nil, err
	}
	ret, _ := value.Int(nil)
	return ret, nil
}

func (n *number) toInt64(checked bool) (int64, error) {
	switch n.form {
	case signedForm:
		return n.i, nil
	case unsignedForm:
		if checked {
			return safecast.ToInt64(n.u)
		}
		return int64(n.u), nil
	case floatForm:
		f := math.Trunc(n.f)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, errOutOfRange
		}
		return int64(f), nil
	}
	value, err := n.toBigInt()
	if err != nil {
		return 0, err
	}
	if !value.IsInt64() {
		return 0, errOutOfRange
	}
	return value.Int64(), nil
}

func (n *number) toUint64() (uint64, error) {
	switch n.form {
	case signedForm:
		return safecast.ToUint64(n.i)
	case unsignedForm:
		return n.u, nil
	case floatForm:
		f := math.Trunc(n.f)
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
			return 0, errOutOfRange
		}
		return uint64(f), nil
	}
	value, err := n.toBigInt()
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, errOutOfRange
	}
	return value.Uint64(), nil
}

// convertNumeric converts numbers, numeric text, booleans and time values to fixed width or arbitrary precision numbers
func convertNumeric(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	n, err := numberOf(src, target.Kind())
	if err != nil {
		return nil, numberFailure(src, target, err)
	}
	base := target.Base()
	switch base {
	case bigIntType:
		value, err := n.toBigInt()
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		if target.IsPointer() {
			return value, nil
		}
		return *value, nil
	case bigFloatType:
		value, err := n.toBigFloat()
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		if target.IsPointer() {
			return value, nil
		}
		return *value, nil
	}
	value := reflect.New(base).Elem()
	checked := session.Options.CheckOverflow
	switch base.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := n.toInt64(checked)
		if err == nil && checked {
			err = checkInt(base.Kind(), i)
		}
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		value.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := n.toUint64()
		if err == nil && checked {
			err = checkUint(base.Kind(), u)
		}
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		value.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f := n.float()
		if checked && value.OverflowFloat(f) {
			return nil, parseFailure(src, target, fmt.Errorf("%w: %v", errOutOfRange, f))
		}
		value.SetFloat(f)
	default:
		return nil, unsupported(src, target)
	}
	return box(target, value), nil
}

func checkInt(kind reflect.Kind, i int64) (err error) {
	switch kind {
	case reflect.Int8:
		_, err = safecast.ToInt8(i)
	case reflect.Int16:
		_, err = safecast.ToInt16(i)
	case reflect.Int32:
		_, err = safecast.ToInt32(i)
	case reflect.Int:
		_, err = safecast.ToInt(i)
	}
	return err
}

func checkUint(kind reflect.Kind, u uint64) (err error) {
	switch kind {
	case reflect.Uint8:
		_, err = safecast.ToUint8(u)
	case reflect.Uint16:
		_, err = safecast.ToUint16(u)
	case reflect.Uint32:
		_, err = safecast.ToUint32(u)
	case reflect.Uint, reflect.Uintptr:
		_, err = safecast.ToUint(u)
	}
	return err
}

func numberFailure(src interface{}, target *desc.Type, err error) error {
	if errors.Is(err, numeral.ErrSyntax) {
		return newError(ErrNumeralSyntax, src, target, err, "")
	}
	return parseFailure(src, target, err)
}

func numberOf(src interface{}, kind desc.Kind) (*number, error) {
	switch actual := indirect(src).(type) {
	case bool:
		if actual {
			return &number{form: signedForm, i: 1}, nil
		}
		return &number{form: signedForm}, nil
	case time.Time:
		return &number{form: signedForm, i: actual.UnixMilli()}, nil
	case big.Int:
		return &number{form: bigIntForm, bigInt: &actual}, nil
	case big.Float:
		return &number{form: bigFloatForm, bigFloat: &actual}, nil
	case numeral.Text:
		value, err := actual.Float64()
		if err != nil {
			return nil, err
		}
		if value == math.Trunc(value) {
			if i, err := actual.Int64(); err == nil {
				return &number{form: signedForm, i: i}, nil
			}
		}
		return &number{form: floatForm, f: value}, nil
	case numeral.Words:
		return nil, fmt.Errorf("words are not parsable: %v", actual)
	}
	value := reflect.ValueOf(indirect(src))
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &number{form: signedForm, i: value.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &number{form: unsignedForm, u: value.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return &number{form: floatForm, f: value.Float()}, nil
	case reflect.Bool:
		return numberOf(value.Bool(), kind)
	case reflect.String:
		return parseNumber(value.String(), kind)
	}
	return nil, fmt.Errorf("not a number: %T", src)
}

// parseNumber parses trimmed decimal or 0x prefixed text, arbitrary precision kinds keep all digits
func parseNumber(text string, kind desc.Kind) (*number, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyNumber
	}
	if n, ok := parseHexNumber(text); ok {
		return n, nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &number{form: signedForm, i: i}, nil
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return &number{form: unsignedForm, u: u}, nil
	}
	if strings.ContainsAny(text, "xXpP_") {
		return nil, fmt.Errorf("invalid decimal number: %v", text)
	}
	switch kind {
	case desc.BigInteger:
		if value, ok := new(big.Int).SetString(text, 10); ok {
			return &number{form: bigIntForm, bigInt: value}, nil
		}
		fallthrough
	case desc.BigDecimal:
		value, _, err := big.ParseFloat(text, 10, bigPrecision, big.ToNearestEven)
		if err != nil {
			return nil, err
		}
		return &number{form: bigFloatForm, bigFloat: value}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("invalid number: %v", text)
	}
	return &number{form: floatForm, f: f}, nil
}

func parseHexNumber(text string) (*number, bool) {
	digits, negative := text, false
	switch digits[0] {
	case '-':
		digits, negative = digits[1:], true
	case '+':
		digits = digits[1:]
	}
	if len(digits) < 3 || digits[0] != '0' || (digits[1] != 'x' && digits[1] != 'X') {
		return nil, false
	}
	u, err := strconv.ParseUint(digits[2:], 16, 64)
	if err != nil {
		return nil, false
	}
	if !negative {
		return &number{form: unsignedForm, u: u}, true
	}
	if u > 1<<63 {
		return nil, false
	}
	return &number{form: signedForm, i: -int64(u)}, true
}
