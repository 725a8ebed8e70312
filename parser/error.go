package parser

import "strings"

// SyntaxError reports a fatal parse error: unbalanced parentheses, a
// quantifier or operator with no preceding primary, or pattern nesting past
// a configured recursion limit. It renders the source pattern with a caret
// under the offending position.
type SyntaxError struct {
	Pattern  string
	Position int
	Message  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteByte('\n')
	b.WriteString(e.Pattern)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Position))
	b.WriteByte('^')
	return b.String()
}
