package numeral

import "math"

// Text represents numeral text that can be read back as a number
type Text interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

type (
	//Chinese numeral text with simple glyphs: 一百二十三
	Chinese string
	//ChineseFinancial numeral text with traditional glyphs: 壹佰贰拾叁
	ChineseFinancial string
	//ChineseMoney amount text: 壹佰贰拾叁元肆角伍分
	ChineseMoney string
	//Words English amount text: ONE HUNDRED AND TWENTY THREE ONLY
	Words string
)

func (c Chinese) Int64() (int64, error) { return ChineseToNumber(string(c)) }
func (c Chinese) Float64() (float64, error) { return ParseChinese(string(c)) }
func (c ChineseFinancial) Int64() (int64, error) { return ChineseToNumber(string(c)) }
func (c ChineseFinancial) Float64() (float64, error) { return ParseChinese(string(c)) }

func (c ChineseMoney) Int64() (int64, error) {
	value, err := ParseChinese(string(c))
	if err != nil {
		return 0, err
	}
	return int64(math.Trunc(value)), nil
}

func (c ChineseMoney) Float64() (float64, error) { return ParseChinese(string(c)) }

// NewChinese formats number with simple glyphs
func NewChinese(number float64) Chinese {
	if number == math.Trunc(number) && math.Abs(number) < MaxFraction {
		return Chinese(FormatChineseInt(int64(number), false))
	}
	return Chinese(FormatChinese(number, false))
}

// NewChineseFinancial formats number with traditional glyphs
func NewChineseFinancial(number float64) ChineseFinancial {
	if number == math.Trunc(number) && math.Abs(number) < MaxFraction {
		return ChineseFinancial(FormatChineseInt(int64(number), true))
	}
	return ChineseFinancial(FormatChinese(number, true))
}

// NewChineseMoney formats amount with 元角分 units
func NewChineseMoney(amount float64) ChineseMoney {
	return ChineseMoney(FormatMoney(amount))
}

// NewWords formats number as English words
func NewWords(number float64) Words {
	return Words(FormatWords(number))
}
