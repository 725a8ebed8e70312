package scanner

import "strings"

// LexError reports a fatal lexical error: a trailing, unescaped `\` with no
// operand. It renders the source pattern with a caret under the offending
// position, matching the rendering the parser uses for SyntaxError.
type LexError struct {
	Pattern  string
	Position int
	Message  string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteByte('\n')
	b.WriteString(e.Pattern)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Position))
	b.WriteByte('^')
	return b.String()
}
