package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ToUnicode escapes non ASCII runes as \uXXXX, runes beyond the basic plane are written as surrogate pairs
func ToUnicode(text string) string {
	builder := strings.Builder{}
	for _, r := range text {
		if r < 0x80 {
			builder.WriteRune(r)
			continue
		}
		if r > 0xffff {
			hi, lo := utf16.EncodeRune(r)
			builder.WriteString(fmt.Sprintf("\\u%04x\\u%04x", hi, lo))
			continue
		}
		builder.WriteString(fmt.Sprintf("\\u%04x", r))
	}
	return builder.String()
}

// FromUnicode replaces \uXXXX escapes with the runes they encode, malformed escapes are kept as is
func FromUnicode(text string) string {
	if !strings.Contains(text, `\u`) && !strings.Contains(text, `\U`) {
		return text
	}
	builder := strings.Builder{}
	var units []uint16
	flush := func() {
		if len(units) > 0 {
			builder.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for i := 0; i < len(text); {
		if unit, ok := escapeAt(text, i); ok {
			units = append(units, unit)
			i += 6
			continue
		}
		flush()
		builder.WriteByte(text[i])
		i++
	}
	flush()
	return builder.String()
}

func escapeAt(text string, i int) (uint16, bool) {
	if i+6 > len(text) || text[i] != '\\' || (text[i+1] != 'u' && text[i+1] != 'U') {
		return 0, false
	}
	value, err := strconv.ParseUint(text[i+2:i+6], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(value), true
}
