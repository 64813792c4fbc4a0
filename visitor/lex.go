package visitor

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	terminatorToken
	squareBlockToken
	scopeBlockToken
	quotedToken
	doubleQuotedToken
)

var (
	whitespaceMatcher   = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	squareBlockMatcher  = parsly.NewToken(squareBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
	scopeBlockMatcher   = parsly.NewToken(scopeBlockToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
	quotedMatcher       = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
	doubleQuotedMatcher = parsly.NewToken(doubleQuotedToken, "\" .... \"", matcher.NewQuote('"', '\\'))
	terminatorMatchers  = map[string]*parsly.Token{
		",":  parsly.NewToken(terminatorToken, "coma", matcher.NewTerminator(',', true)),
		";":  parsly.NewToken(terminatorToken, "semicolon", matcher.NewTerminator(';', true)),
		"|":  parsly.NewToken(terminatorToken, "pipe", matcher.NewTerminator('|', true)),
		"\t": parsly.NewToken(terminatorToken, "tab", matcher.NewTerminator('\t', true)),
		"\n": parsly.NewToken(terminatorToken, "new line", matcher.NewTerminator('\n', true)),
	}
)
