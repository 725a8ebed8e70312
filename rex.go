// Package rex implements a minimal backtracking regular expression engine
// over `Char`/`Dot`/`Group`/`Alternation`/`Concatenation` expressions with
// greedy `?`/`*`/`+` quantifiers.
//
// Basic usage:
//
//	re, err := rex.Compile(`ab*c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("xacx") {
//	    println("matched")
//	}
//
// Advanced usage:
//
//	config := rex.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := rex.CompileWithConfig(`ab*c`, config)
//
// Limitations: no character classes, anchors, bounded repetition, lazy
// quantifiers, or capture groups — see the package's supporting
// documentation for the full grammar.
package rex

import "github.com/coregx/rex/engine"

// Config controls compile-time behavior. It is engine.Config re-exported
// under the root package, the same way the teacher re-exports its
// orchestrator's Config as the public compilation knob.
type Config = engine.Config

// DefaultConfig returns the default configuration: prefiltering on, a
// permissive literal budget, and the standard recursion ceiling.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// ConfigError reports an out-of-range Config field.
type ConfigError = engine.ConfigError

// Regexp represents a compiled regular expression. A Regexp is safe for
// concurrent use by multiple goroutines: Compile produces an immutable
// Program, and every match walk creates its own matcher.Matcher.
type Regexp struct {
	prog    *engine.Program
	pattern string
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at init time.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern under a custom Config.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	prog, err := engine.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regexp{prog: prog, pattern: pattern}, nil
}

// String returns the source pattern text the Regexp was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// Match is one match range, the rune offsets [Start, End) within the
// target the match covers.
type Match struct {
	Start, End int
}

// String returns the substring of target the Match covers.
func (m Match) String(target string) string {
	runes := []rune(target)
	return string(runes[m.Start:m.End])
}

// MatchString reports whether target contains any match of re.
func (re *Regexp) MatchString(target string) bool {
	_, _, ok := re.prog.NewMatcher(target).Next()
	return ok
}

// FindString returns the leftmost match in target, or ok=false if there is
// none.
func (re *Regexp) FindString(target string) (Match, bool) {
	s, e, ok := re.prog.NewMatcher(target).Next()
	if !ok {
		return Match{}, false
	}
	return Match{Start: s, End: e}, true
}

// FindAllString returns every successive, non-overlapping match in target,
// in left-to-right order, or nil if there are none.
func (re *Regexp) FindAllString(target string) []Match {
	m := re.prog.NewMatcher(target)
	var matches []Match
	for {
		s, e, ok := m.Next()
		if !ok {
			break
		}
		matches = append(matches, Match{Start: s, End: e})
	}
	return matches
}
