package conv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/xconv/desc"
	"github.com/viant/xconv/numeral"
)

// convertNumeral renders numbers as Chinese or English numeral text, plain text is read as a number or Chinese numeral
func convertNumeral(src interface{}, target *desc.Type, session *Session) (interface{}, error) {
	src = indirect(src)
	base := target.Base()
	if reflect.TypeOf(src) == base {
		return box(target, reflect.ValueOf(src)), nil
	}
	n, err := numeralNumberOf(src)
	if err != nil {
		return nil, numberFailure(src, target, err)
	}
	var text string
	integral := n.form == signedForm
	switch base {
	case chineseType, financeType:
		traditional := base == financeType
		if integral {
			text = numeral.FormatChineseInt(n.i, traditional)
		} else {
			text = numeral.FormatChinese(n.float(), traditional)
		}
	case moneyType:
		text = numeral.FormatMoney(n.float())
	case wordsType:
		text = numeral.FormatWords(n.float())
	default:
		return nil, unsupported(src, target)
	}
	if text == "" {
		return nil, parseFailure(src, target, fmt.Errorf("%w: %v", errOutOfRange, n.float()))
	}
	return box(target, reflect.ValueOf(text)), nil
}

func numeralNumberOf(src interface{}) (*number, error) {
	value := reflect.ValueOf(src)
	if _, ok := src.(numeral.Text); ok || value.Kind() != reflect.String {
		return numberOf(src, desc.Double)
	}
	text := strings.TrimSpace(value.String())
	if n, err := parseNumber(text, desc.Double); err == nil {
		return n, nil
	}
	if i, err := numeral.ChineseToNumber(text); err == nil {
		return &number{form: signedForm, i: i}, nil
	}
	f, err := numeral.ParseChinese(text)
	if err != nil {
		return nil, err
	}
	return &number{form: floatForm, f: f}, nil
}
