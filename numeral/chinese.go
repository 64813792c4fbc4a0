package numeral

import (
	"math"
	"strings"

	"github.com/viant/parsly"
)

const (
	wan = 10000
	yi  = 100000000

	//MaxFraction is the magnitude above which fraction digits are not rendered
	MaxFraction = 1e15
	maxInteger  = 9.2e18
)

var (
	simpleDigits      = []rune("零一二三四五六七八九")
	traditionalDigits = []rune("零壹贰叁肆伍陆柒捌玖")
	simpleUnits       = []rune{0, '十', '百', '千'}
	traditionalUnits  = []rune{0, '拾', '佰', '仟'}
)

type glyphs struct {
	digits []rune
	units  []rune
}

func glyphsOf(traditional bool) *glyphs {
	if traditional {
		return &glyphs{digits: traditionalDigits, units: traditionalUnits}
	}
	return &glyphs{digits: simpleDigits, units: simpleUnits}
}

// FormatChineseInt formats an integer as Chinese numeral text, 1012 is rendered as 一千零一十二
func FormatChineseInt(number int64, traditional bool) string {
	builder := &strings.Builder{}
	magnitude := uint64(number)
	if number < 0 {
		builder.WriteRune('负')
		magnitude = uint64(-(number + 1)) + 1
	}
	glyphsOf(traditional).writeInteger(builder, magnitude)
	return builder.String()
}

// FormatChinese formats a number as Chinese numeral text, the fraction is rounded to two digits and rendered after 点.
// It returns an empty string for NaN, infinite or out of int64 range numbers.
func FormatChinese(number float64, traditional bool) string {
	return formatDecimal(number, glyphsOf(traditional), false)
}

// FormatMoney formats an amount with traditional glyphs and 元角分 units, 12 is rendered as 壹拾贰元整
func FormatMoney(amount float64) string {
	return formatDecimal(amount, glyphsOf(true), true)
}

func formatDecimal(number float64, g *glyphs, money bool) string {
	if math.IsNaN(number) || math.IsInf(number, 0) || math.Abs(number) >= maxInteger {
		return ""
	}
	builder := &strings.Builder{}
	abs := math.Abs(number)
	var integer, fraction uint64
	if abs >= MaxFraction {
		integer = uint64(abs)
	} else {
		cents := uint64(math.Round(abs * 100))
		integer, fraction = cents/100, cents%100
	}
	if number < 0 && (integer > 0 || fraction > 0) {
		builder.WriteRune('负')
	}
	g.writeInteger(builder, integer)
	jiao, fen := fraction/10, fraction%10
	if money {
		builder.WriteRune('元')
		if fraction == 0 {
			builder.WriteRune('整')
			return builder.String()
		}
		if jiao > 0 {
			builder.WriteRune(g.digits[jiao])
			builder.WriteRune('角')
		}
		if fen > 0 {
			if jiao == 0 {
				builder.WriteRune(g.digits[0])
			}
			builder.WriteRune(g.digits[fen])
			builder.WriteRune('分')
		}
		return builder.String()
	}
	if fraction > 0 {
		builder.WriteRune('点')
		builder.WriteRune(g.digits[jiao])
		if fen > 0 {
			builder.WriteRune(g.digits[fen])
		}
	}
	return builder.String()
}

func (g *glyphs) writeInteger(builder *strings.Builder, n uint64) {
	switch {
	case n == 0:
		builder.WriteRune(g.digits[0])
	case n >= yi:
		g.writeInteger(builder, n/yi)
		builder.WriteRune('亿')
		g.writeLow(builder, n%yi, yi/10)
	case n >= wan:
		g.writeSection(builder, n/wan)
		builder.WriteRune('万')
		g.writeLow(builder, n%wan, wan/10)
	default:
		g.writeSection(builder, n)
	}
}

// writeLow writes the part below a large unit, a leading 零 marks a gap in places
func (g *glyphs) writeLow(builder *strings.Builder, low, full uint64) {
	if low == 0 {
		return
	}
	if low < full {
		builder.WriteRune(g.digits[0])
	}
	g.writeInteger(builder, low)
}

func (g *glyphs) writeSection(builder *strings.Builder, section uint64) {
	wrote, zero := false, false
	for place, divisor := 3, uint64(1000); place >= 0; place, divisor = place-1, divisor/10 {
		digit := section / divisor % 10
		if digit == 0 {
			zero = zero || wrote
			continue
		}
		if zero {
			builder.WriteRune(g.digits[0])
			zero = false
		}
		builder.WriteRune(g.digits[digit])
		if place > 0 {
			builder.WriteRune(g.units[place])
		}
		wrote = true
	}
}

// ChineseToNumber parses Chinese numeral text, 一百二十三 is parsed as 123
func ChineseToNumber(text string) (int64, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	negative := cursor.MatchAfterOptional(whitespaceMatcher, negativeMatcher).Code == negativeToken
	if !negative {
		cursor.Pos = 0
	}
	value, err := parseInteger(cursor, text)
	if err != nil {
		return 0, err
	}
	if err = expectEOF(cursor, text); err != nil {
		return 0, err
	}
	if negative {
		value = -value
	}
	return value, nil
}

// ParseChinese parses Chinese numeral text with an optional 点 fraction or 元角分 money units
func ParseChinese(text string) (float64, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	negative := cursor.MatchAfterOptional(whitespaceMatcher, negativeMatcher).Code == negativeToken
	if !negative {
		cursor.Pos = 0
	}
	integer, err := parseInteger(cursor, text)
	if err != nil {
		return 0, err
	}
	value := float64(integer)
	pos := cursor.Pos
	match := cursor.MatchAfterOptional(whitespaceMatcher, pointMatcher, yuanMatcher)
	switch match.Code {
	case pointToken:
		fraction, err := parseFraction(cursor, text)
		if err != nil {
			return 0, err
		}
		value += fraction
	case yuanToken:
		fraction, err := parseMoney(cursor, text)
		if err != nil {
			return 0, err
		}
		value += fraction
	default:
		cursor.Pos = pos
	}
	if err = expectEOF(cursor, text); err != nil {
		return 0, err
	}
	if negative {
		value = -value
	}
	return value, nil
}

func expectEOF(cursor *parsly.Cursor, text string) error {
	pos := cursor.Pos
	if cursor.MatchAny(whitespaceMatcher).Code != whitespaceToken {
		cursor.Pos = pos
	}
	if cursor.Pos < len(cursor.Input) {
		return syntaxError(text, cursor.Pos, currentRune(cursor), "unexpected")
	}
	return nil
}

func parseFraction(cursor *parsly.Cursor, text string) (float64, error) {
	value, scale, digits := 0.0, 0.1, 0
loop:
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		match := cursor.MatchAny(digitMatcher, zeroMatcher)
		switch match.Code {
		case digitToken:
			value += float64(digitValues[matchedRune(cursor, match)]) * scale
		case zeroToken:
		default:
			cursor.Pos = pos
			break loop
		}
		scale /= 10
		digits++
	}
	if digits == 0 {
		return 0, syntaxError(text, cursor.Pos, 0, "missing fraction digits")
	}
	return value, nil
}

func parseMoney(cursor *parsly.Cursor, text string) (float64, error) {
	value := 0.0
	var pending int64 = -1
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		match := cursor.MatchAfterOptional(whitespaceMatcher, digitMatcher, zeroMatcher, jiaoMatcher, fenMatcher, wholeMatcher)
		switch match.Code {
		case digitToken:
			if pending != -1 {
				return 0, syntaxError(text, pos, matchedRune(cursor, match), "digit after digit")
			}
			pending = digitValues[matchedRune(cursor, match)]
		case zeroToken:
		case jiaoToken, fenToken:
			if pending == -1 {
				return 0, syntaxError(text, pos, matchedRune(cursor, match), "unit without digit")
			}
			if match.Code == jiaoToken {
				value += float64(pending) / 10
			} else {
				value += float64(pending) / 100
			}
			pending = -1
		case wholeToken:
			return value, nil
		default:
			cursor.Pos = pos
			return value, nil
		}
	}
	if pending != -1 {
		return 0, syntaxError(text, cursor.Pos, 0, "digit without unit")
	}
	return value, nil
}

// integerParser accumulates sections between large units
type integerParser struct {
	text       string
	total      int64
	section    int64
	pending    int64
	hasPending bool
	afterUnit  bool
	zeroed     bool
	lastSmall  int64
	lastLarge  int64
	lastPlace  int64
	prev       int
	tokens     int
}

func parseInteger(cursor *parsly.Cursor, text string) (int64, error) {
	p := &integerParser{text: text, prev: -1}
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		match := cursor.MatchAfterOptional(whitespaceMatcher, integerTokens...)
		var err error
		switch match.Code {
		case digitToken:
			err = p.digit(pos, matchedRune(cursor, match))
		case zeroToken:
			err = p.zero(pos, matchedRune(cursor, match))
		case smallUnitToken:
			err = p.smallUnit(pos, matchedRune(cursor, match))
		case largeUnitToken:
			err = p.largeUnit(pos, matchedRune(cursor, match))
		default:
			cursor.Pos = pos
			if p.tokens == 0 {
				return 0, p.unexpected(cursor)
			}
			return p.result(pos)
		}
		if err != nil {
			return 0, err
		}
		p.prev = match.Code
		p.tokens++
	}
	if p.tokens == 0 {
		return 0, syntaxError(text, 0, 0, "empty text")
	}
	return p.result(cursor.Pos)
}

func (p *integerParser) unexpected(cursor *parsly.Cursor) error {
	pos := cursor.Pos
	if cursor.MatchAny(whitespaceMatcher).Code != whitespaceToken {
		cursor.Pos = pos
	}
	if cursor.Pos >= len(cursor.Input) {
		return syntaxError(p.text, 0, 0, "empty text")
	}
	r := currentRune(cursor)
	cursor.Pos = pos
	return syntaxError(p.text, pos, r, "unexpected")
}

func (p *integerParser) digit(pos int, r rune) error {
	if p.prev == digitToken {
		return syntaxError(p.text, pos, r, "digit after digit")
	}
	p.pending = digitValues[r]
	p.hasPending = true
	p.afterUnit = p.prev == smallUnitToken || p.prev == largeUnitToken
	return nil
}

func (p *integerParser) zero(pos int, r rune) error {
	if p.prev == digitToken {
		return syntaxError(p.text, pos, r, "zero after digit")
	}
	p.zeroed = true
	return nil
}

func (p *integerParser) smallUnit(pos int, r rune) error {
	unit := smallUnitValues[r]
	switch {
	case p.prev == smallUnitToken:
		return syntaxError(p.text, pos, r, "unit after unit")
	case p.lastSmall != 0 && unit >= p.lastSmall:
		return syntaxError(p.text, pos, r, "unit out of order")
	}
	digit := int64(1)
	if p.hasPending {
		digit = p.pending
	}
	p.section += digit * unit
	p.hasPending, p.zeroed = false, false
	p.lastSmall, p.lastPlace = unit, unit
	return nil
}

func (p *integerParser) largeUnit(pos int, r rune) error {
	unit := largeUnitValues[r]
	if p.prev == largeUnitToken {
		if unit < p.lastLarge {
			return syntaxError(p.text, pos, r, "unit out of order")
		}
		total, ok := multiply(p.total, unit)
		if !ok {
			return syntaxError(p.text, pos, r, "overflow")
		}
		p.total, p.lastLarge, p.lastPlace = total, unit, p.lastPlace*unit
		return nil
	}
	if p.prev == zeroToken {
		return syntaxError(p.text, pos, r, "unit after zero")
	}
	section := p.section
	if p.hasPending {
		section += p.pending
	}
	if p.tokens == 0 {
		section = 1
	}
	var ok bool
	switch {
	case p.lastLarge == unit:
		return syntaxError(p.text, pos, r, "repeated unit")
	case p.lastLarge != 0 && unit > p.lastLarge:
		p.total, ok = multiply(p.total+section, unit)
	default:
		section, ok = multiply(section, unit)
		p.total += section
		ok = ok && p.total >= 0
	}
	if !ok {
		return syntaxError(p.text, pos, r, "overflow")
	}
	p.section, p.pending, p.hasPending, p.zeroed = 0, 0, false, false
	p.lastSmall, p.lastLarge, p.lastPlace = 0, unit, unit
	return nil
}

func (p *integerParser) result(pos int) (int64, error) {
	if p.hasPending {
		place := int64(1)
		if p.afterUnit && !p.zeroed && p.lastPlace >= 10 {
			place = p.lastPlace / 10
		}
		p.section += p.pending * place
	}
	total := p.total + p.section
	if total < 0 {
		return 0, syntaxError(p.text, pos, 0, "overflow")
	}
	return total, nil
}

func multiply(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	ret := a * b
	if ret/b != a || ret < 0 {
		return 0, false
	}
	return ret, true
}
