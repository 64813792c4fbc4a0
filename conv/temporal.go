package conv

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/xconv/desc"
)

// epochDigits is the length above which a digit only text matching no layout is read as epoch milliseconds
const epochDigits = 8

func convertTemporal(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	ts, err := timeOf(src, session)
	if err != nil {
		return nil, parseFailure(src, target, err)
	}
	return box(target, reflect.ValueOf(ts)), nil
}

func timeOf(src interface{}, session *Session) (time.Time, error) {
	src = indirect(src)
	if ts, ok := src.(time.Time); ok {
		return ts, nil
	}
	value := reflect.ValueOf(src)
	if value.Kind() != reflect.String {
		n, err := numberOf(src, desc.Long)
		if err != nil {
			return time.Time{}, err
		}
		millis, err := n.toInt64(true)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(millis).In(session.Options.TimeLocation()), nil
	}
	text := strings.TrimSpace(value.String())
	if text == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	location := session.Options.TimeLocation()
	if session.timeLayout != "" {
		if ts, err := time.ParseInLocation(session.timeLayout, text, location); err == nil {
			return ts, nil
		}
	}
	for _, layout := range session.Options.DateLayouts {
		if ts, err := time.ParseInLocation(layout, text, location); err == nil {
			return ts, nil
		}
	}
	if len(text) > epochDigits && isDigits(text) {
		n, err := parseNumber(text, desc.Long)
		if err == nil {
			if millis, err := n.toInt64(true); err == nil {
				return time.UnixMilli(millis).In(location), nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", text)
}

func isDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// convertDuration reads integers as nanoseconds and text as go duration
func convertDuration(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	src = indirect(src)
	var ret time.Duration
	switch actual := src.(type) {
	case time.Duration:
		ret = actual
	default:
		value := reflect.ValueOf(src)
		if value.Kind() == reflect.String {
			text := strings.TrimSpace(value.String())
			if d, err := time.ParseDuration(text); err == nil {
				ret = d
				break
			}
		}
		n, err := numberOf(src, desc.Long)
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		nanos, err := n.toInt64(true)
		if err != nil {
			return nil, parseFailure(src, target, err)
		}
		ret = time.Duration(nanos)
	}
	return box(target, reflect.ValueOf(ret)), nil
}
