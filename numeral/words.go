package numeral

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	ones = []string{"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
		"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN"}
	tens   = []string{"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY"}
	scales = []string{"", "THOUSAND", "MILLION", "BILLION", "TRILLION", "QUADRILLION"}
)

// FormatWords formats a number as English words, 123.45 is rendered as
// ONE HUNDRED AND TWENTY THREE AND CENTS FORTY FIVE ONLY
func FormatWords(number float64) string {
	if math.IsNaN(number) || math.IsInf(number, 0) || math.Abs(number) >= MaxFraction {
		return ""
	}
	cents := uint64(math.Round(math.Abs(number) * 100))
	integer, fraction := cents/100, cents%100
	var words []string
	if number < 0 && cents > 0 {
		words = append(words, "MINUS")
	}
	if integer == 0 && fraction == 0 {
		words = append(words, "ZERO")
	}
	if integer > 0 {
		words = append(words, integerWords(integer)...)
	}
	if fraction > 0 {
		if integer > 0 {
			words = append(words, "AND")
		}
		words = append(words, "CENTS")
		words = append(words, hundredWords(fraction)...)
	}
	words = append(words, "ONLY")
	return strings.Join(words, " ")
}

func integerWords(n uint64) []string {
	var groups [][]string
	for scale := 0; n > 0; scale++ {
		group := n % 1000
		n /= 1000
		if group == 0 {
			continue
		}
		words := hundredWords(group)
		if scales[scale] != "" {
			words = append(words, scales[scale])
		}
		groups = append(groups, words)
	}
	var ret []string
	for i := len(groups) - 1; i >= 0; i-- {
		ret = append(ret, groups[i]...)
	}
	return ret
}

func hundredWords(n uint64) []string {
	var ret []string
	if hundreds := n / 100; hundreds > 0 {
		ret = append(ret, ones[hundreds], "HUNDRED")
		if n%100 > 0 {
			ret = append(ret, "AND")
		}
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		ret = append(ret, ones[rest])
	default:
		ret = append(ret, tens[rest/10])
		if rest%10 > 0 {
			ret = append(ret, ones[rest%10])
		}
	}
	return ret
}

// FormatSimple formats a number in compact SI form, 1200 is rendered as 1.2k
func FormatSimple(number float64) string {
	return strings.ReplaceAll(humanize.SIWithDigits(number, 2, ""), " ", "")
}
