// Package engine orchestrates the parser, literal extractor, and
// prefilter builder into one compiled Program, the unit the root package
// wraps to expose its public API.
package engine

import (
	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/matcher"
	"github.com/coregx/rex/parser"
	"github.com/coregx/rex/prefilter"
)

// Program is the immutable result of compiling one pattern: its parsed
// tree, plus an optional prefilter built from the tree's extracted
// leading literals.
type Program struct {
	pattern string
	tree    *parser.Tree

	// pf narrows candidate positions ahead of the matcher, or nil when no
	// prefilter was built (no useful literal, or EnablePrefilter is false).
	pf prefilter.Prefilter
	// pfComplete is true when a pf hit is itself a full match, letting a
	// caller skip invoking the matcher entirely.
	pfComplete bool
}

// Pattern returns the source pattern the Program was compiled from.
func (p *Program) Pattern() string { return p.pattern }

// Prefilter returns the Program's prefilter, or nil if none was built.
func (p *Program) Prefilter() prefilter.Prefilter { return p.pf }

// PrefilterIsComplete reports whether a prefilter hit is itself a
// guaranteed full match, letting a caller bypass the matcher.
func (p *Program) PrefilterIsComplete() bool { return p.pfComplete }

// NewMatcher binds target and returns a ready matcher.Matcher for the
// compiled pattern, sharing the Program's prefilter (if any) with it so
// Next's outer loop narrows its candidate positions instead of sliding
// one character at a time.
func (p *Program) NewMatcher(target string) *matcher.Matcher {
	m := matcher.New(p.tree, target)
	if p.pf != nil {
		m.SetPrefilter(p.pf)
	}
	return m
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Program, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern under config, parsing it, extracting
// its leading literals, and building a prefilter from them when
// config.EnablePrefilter is set.
func CompileWithConfig(pattern string, config Config) (*Program, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tree, err := parser.Parse(pattern, config.MaxRecursionDepth)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	prog := &Program{pattern: pattern, tree: tree}

	if !config.EnablePrefilter {
		return prog, nil
	}

	extractor := literal.New(literal.Config{
		MaxLiterals:   config.MaxPrefilterLiterals,
		MaxLiteralLen: 64,
	})
	prefixes := extractor.ExtractPrefixes(tree)
	if prefixes.IsEmpty() || !longEnough(prefixes, config.MinPrefilterLiteralLen) {
		return prog, nil
	}

	complete := allComplete(prefixes) && sameLength(prefixes)
	pf := prefilter.NewBuilder(prefixes, complete).Build()
	if pf == nil {
		return prog, nil
	}
	prog.pf = pf
	prog.pfComplete = pf.IsComplete()
	return prog, nil
}

// longEnough reports whether every literal in seq meets minLen, since a
// literal shorter than that narrows a search too little to be worth the
// prefilter call overhead.
func longEnough(seq *literal.Seq, minLen int) bool {
	for i := 0; i < seq.Len(); i++ {
		if seq.Get(i).Len() < minLen {
			return false
		}
	}
	return true
}

// allComplete reports whether every literal in seq is itself the entire
// remainder of a match at its extraction point — the condition under
// which a prefilter hit can be trusted as a full match with no further
// work from the matcher.
func allComplete(seq *literal.Seq) bool {
	for i := 0; i < seq.Len(); i++ {
		if !seq.Get(i).Complete {
			return false
		}
	}
	return true
}

// sameLength reports whether every literal in seq has the same rune
// length. A prefilter hit only determines the match's end position
// unambiguously when all complete alternatives share one length; a
// pattern like "cat|dog" satisfies this, "cat|elephant" does not.
func sameLength(seq *literal.Seq) bool {
	if seq.Len() == 0 {
		return true
	}
	n := seq.Get(0).Len()
	for i := 1; i < seq.Len(); i++ {
		if seq.Get(i).Len() != n {
			return false
		}
	}
	return true
}

// CompileError reports a pattern that failed to parse.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface, forwarding the underlying
// scanner/parser error's message unprefixed so positional detail
// survives unchanged.
func (e *CompileError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying scanner/parser error for errors.As/errors.Is.
func (e *CompileError) Unwrap() error { return e.Err }
