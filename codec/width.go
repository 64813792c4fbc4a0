package codec

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/width"
)

const ideographicSpace = '\u3000'

// ToSBC converts half width characters to their full width form, runes in skip set are kept
func ToSBC(text string, skip ...rune) string {
	return mapRunes(text, skip, func(r rune) rune {
		if r == ' ' {
			return ideographicSpace
		}
		if r < 0x7f {
			if wide := width.LookupRune(r).Wide(); wide != 0 {
				return wide
			}
		}
		return r
	})
}

// ToDBC converts full width characters to their half width form, runes in skip set are kept
func ToDBC(text string, skip ...rune) string {
	return mapRunes(text, skip, func(r rune) rune {
		switch r {
		case ideographicSpace, '\u00a0', '\u2007', '\u202f':
			return ' '
		}
		props := width.LookupRune(r)
		if props.Kind() == width.EastAsianFullwidth {
			if narrow := props.Narrow(); narrow != 0 && narrow < 0x7f {
				return narrow
			}
		}
		return r
	})
}

func mapRunes(text string, skip []rune, fn func(r rune) rune) string {
	if text == "" {
		return text
	}
	builder := strings.Builder{}
	builder.Grow(len(text))
	for _, r := range text {
		if lo.Contains(skip, r) {
			builder.WriteRune(r)
			continue
		}
		builder.WriteRune(fn(r))
	}
	return builder.String()
}
