package numeral

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every malformed numeral text error
var ErrSyntax = errors.New("numeral syntax error")

// SyntaxError represents malformed numeral token sequence
type SyntaxError struct {
	Text   string
	Pos    int
	Rune   rune
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Rune == 0 {
		return fmt.Sprintf("invalid numeral %q: %v", e.Text, e.Reason)
	}
	return fmt.Sprintf("invalid numeral %q: %v %q at %v", e.Text, e.Reason, e.Rune, e.Pos)
}

// Is returns true for ErrSyntax
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func syntaxError(text string, pos int, r rune, reason string) error {
	return &SyntaxError{Text: text, Pos: pos, Rune: r, Reason: reason}
}
