package conv

import (
	"errors"
	"fmt"

	"github.com/viant/xconv/desc"
)

var (
	// ErrUnsupportedTargetType no converter resolves for the target
	ErrUnsupportedTargetType = errors.New("unsupported target type")
	// ErrSourceParseFailure source form does not match any accepted representation
	ErrSourceParseFailure = errors.New("source parse failure")
	// ErrNullNotAllowed nil source for a primitive target
	ErrNullNotAllowed = errors.New("null not allowed")
	// ErrAmbiguousGenericElement container element kind cannot be introspected
	ErrAmbiguousGenericElement = errors.New("ambiguous generic element")
	// ErrNumeralSyntax malformed Chinese numeral text
	ErrNumeralSyntax = errors.New("numeral syntax error")
)

// Error represents a conversion failure
type Error struct {
	Code   error
	Target *desc.Type
	Source interface{}
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cannot convert %T(%v) to %v: %v", e.Source, e.Source, e.Target, e.Code)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns error code and cause
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Code}
	}
	return []error{e.Code, e.Cause}
}

// CodeOf returns conversion error code or nil
func CodeOf(err error) error {
	for _, code := range []error{ErrUnsupportedTargetType, ErrSourceParseFailure, ErrNullNotAllowed, ErrAmbiguousGenericElement, ErrNumeralSyntax} {
		if errors.Is(err, code) {
			return code
		}
	}
	return nil
}

func newError(code error, src interface{}, target *desc.Type, cause error, reason string) *Error {
	return &Error{Code: code, Source: src, Target: target, Reason: reason, Cause: cause}
}

func parseFailure(src interface{}, target *desc.Type, cause error) error {
	return newError(ErrSourceParseFailure, src, target, cause, "")
}

func unsupported(src interface{}, target *desc.Type) error {
	return newError(ErrUnsupportedTargetType, src, target, nil, "")
}
