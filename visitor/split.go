package visitor

import (
	"strings"

	"github.com/samber/lo"
	"github.com/viant/parsly"
)

// DefaultDelimiter separates elements of delimited text
const DefaultDelimiter = ","

// Split splits delimited text into trimmed elements; enclosing brackets are removed,
// quoted and bracketed elements are kept whole
func Split(text string, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	text = trimEnclosing(strings.TrimSpace(text))
	if text == "" {
		return []string{}
	}
	var elements []string
	terminator, ok := terminatorMatchers[delimiter]
	if !ok {
		elements = strings.Split(text, delimiter)
	} else {
		cursor := parsly.NewCursor("", []byte(text), 0)
		for cursor.Pos < len(cursor.Input) {
			elements = append(elements, matchElement(cursor, terminator))
		}
		if strings.HasSuffix(text, delimiter) {
			elements = append(elements, "")
		}
	}
	return lo.Map(elements, func(element string, _ int) string {
		return unquote(strings.TrimSpace(element))
	})
}

func matchElement(cursor *parsly.Cursor, terminator *parsly.Token) string {
	value := ""
	match := cursor.MatchAfterOptional(whitespaceMatcher, squareBlockMatcher, scopeBlockMatcher, quotedMatcher, doubleQuotedMatcher, terminator)
	switch match.Code {
	case squareBlockToken, scopeBlockToken, quotedToken, doubleQuotedToken:
		value = match.Text(cursor)
		pos := cursor.Pos
		if cursor.MatchAfterOptional(whitespaceMatcher, terminator).Code != terminatorToken {
			cursor.Pos = pos
			value += matchRest(cursor, terminator)
		}
	case terminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude delimiter
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return value
}

// matchRest consumes text following a block up to the next delimiter
func matchRest(cursor *parsly.Cursor, terminator *parsly.Token) string {
	match := cursor.MatchAny(terminator)
	if match.Code == terminatorToken {
		value := match.Text(cursor)
		return value[:len(value)-1]
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}

// trimEnclosing removes brackets enclosing the whole text
func trimEnclosing(text string) string {
	if len(text) < 2 || text[0] != '[' {
		return text
	}
	cursor := parsly.NewCursor("", []byte(text), 0)
	if cursor.MatchAny(squareBlockMatcher).Code == squareBlockToken && cursor.Pos == len(cursor.Input) {
		return strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}

func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	if quote := text[0]; (quote == '\'' || quote == '"') && text[len(text)-1] == quote {
		return text[1 : len(text)-1]
	}
	return text
}
