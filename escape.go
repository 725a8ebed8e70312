package rex

import "github.com/coregx/rex/internal/escape"

// Escape returns s with every metacharacter (`(`, `)`, `|`, `?`, `*`, `+`,
// `.`, `\`) prefixed by `\`, so the result can be spliced into a pattern
// and matched as a literal. Compiling Escape(s) and matching it against
// target s always yields a match of the whole string.
func Escape(s string) string {
	return escape.String(s)
}
