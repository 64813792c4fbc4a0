package numeral

import (
	"unicode/utf8"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	digitToken
	zeroToken
	smallUnitToken
	largeUnitToken
	negativeToken
	pointToken
	yuanToken
	jiaoToken
	fenToken
	wholeToken
)

var (
	digitValues = map[rune]int64{
		'一': 1, '二': 2, '两': 2, '三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
		'壹': 1, '贰': 2, '貳': 2, '叁': 3, '參': 3, '肆': 4, '伍': 5, '陆': 6, '陸': 6, '柒': 7, '捌': 8, '玖': 9,
	}
	smallUnitValues = map[rune]int64{
		'十': 10, '拾': 10,
		'百': 100, '佰': 100,
		'千': 1000, '仟': 1000,
	}
	largeUnitValues = map[rune]int64{
		'万': 10000, '萬': 10000,
		'亿': 100000000, '億': 100000000,
	}
)

var (
	whitespaceMatcher = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	digitMatcher      = parsly.NewToken(digitToken, "digit", newRuneMatcher(keys(digitValues)...))
	zeroMatcher       = parsly.NewToken(zeroToken, "零", newRuneMatcher('零', '〇', '0'))
	smallUnitMatcher  = parsly.NewToken(smallUnitToken, "十百千", newRuneMatcher(keys(smallUnitValues)...))
	largeUnitMatcher  = parsly.NewToken(largeUnitToken, "万亿", newRuneMatcher(keys(largeUnitValues)...))
	negativeMatcher   = parsly.NewToken(negativeToken, "负", newRuneMatcher('负', '負', '-'))
	pointMatcher      = parsly.NewToken(pointToken, "点", newRuneMatcher('点', '點'))
	yuanMatcher       = parsly.NewToken(yuanToken, "元", newRuneMatcher('元', '圆', '圓'))
	jiaoMatcher       = parsly.NewToken(jiaoToken, "角", newRuneMatcher('角'))
	fenMatcher        = parsly.NewToken(fenToken, "分", newRuneMatcher('分'))
	wholeMatcher      = parsly.NewToken(wholeToken, "整", newRuneMatcher('整', '正'))
)

var integerTokens = []*parsly.Token{digitMatcher, zeroMatcher, smallUnitMatcher, largeUnitMatcher}

// runeMatcher matches a single rune from the set
type runeMatcher struct {
	runes map[rune]bool
}

func (m *runeMatcher) Match(cursor *parsly.Cursor) (matched int) {
	if cursor.Pos >= len(cursor.Input) {
		return 0
	}
	r, size := utf8.DecodeRune(cursor.Input[cursor.Pos:])
	if r == utf8.RuneError || !m.runes[r] {
		return 0
	}
	return size
}

func newRuneMatcher(runes ...rune) *runeMatcher {
	ret := &runeMatcher{runes: make(map[rune]bool, len(runes))}
	for _, r := range runes {
		ret.runes[r] = true
	}
	return ret
}

func keys(values map[rune]int64) []rune {
	ret := make([]rune, 0, len(values))
	for k := range values {
		ret = append(ret, k)
	}
	return ret
}

func matchedRune(cursor *parsly.Cursor, match *parsly.TokenMatch) rune {
	r, _ := utf8.DecodeRuneInString(match.Text(cursor))
	return r
}

func currentRune(cursor *parsly.Cursor) rune {
	if cursor.Pos >= len(cursor.Input) {
		return 0
	}
	r, _ := utf8.DecodeRune(cursor.Input[cursor.Pos:])
	return r
}
