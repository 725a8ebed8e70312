// Package prefilter finds candidate match positions cheaply, ahead of the
// backtracking matcher, from the literal rune sequences the literal
// package extracts from a pattern. Scanning for a concrete run of runes is
// far cheaper per rune than stepping the matcher, so a prefilter lets the
// engine skip long stretches of a target that cannot possibly match.
package prefilter

import "github.com/coregx/rex/literal"

// Prefilter narrows the positions a matcher needs to try.
type Prefilter interface {
	// Find returns the rune range [s, e) of the next candidate at or after
	// start, or ok=false if no candidate remains in target.
	Find(target []rune, start int) (s, e int, ok bool)

	// IsComplete reports whether every Find hit is itself a full match of
	// the pattern, letting the caller skip the backtracking matcher
	// entirely. True only when the pattern is exactly one of the
	// extracted literals with nothing else in the tree.
	IsComplete() bool
}

// Builder selects the most effective Prefilter for a set of extracted
// prefix literals.
type Builder struct {
	prefixes *literal.Seq
	// complete is true when the pattern reduces to exactly the extracted
	// literal set, so a literal hit guarantees a full match.
	complete bool
}

// NewBuilder builds a Builder from prefixes (as returned by
// literal.Extractor.ExtractPrefixes). complete should be true only when the
// caller knows the whole pattern is exactly this literal set (e.g. "foo",
// or "foo|bar" with no trailing structure).
func NewBuilder(prefixes *literal.Seq, complete bool) *Builder {
	return &Builder{prefixes: prefixes, complete: complete}
}

// Build constructs the best available Prefilter, or nil if the literal set
// is empty or not worth prefiltering.
func (b *Builder) Build() Prefilter {
	if b.prefixes.IsEmpty() {
		return nil
	}
	seq := b.prefixes

	// Small alternation sets (including the single-literal case): a direct
	// multi-needle scan over runes.
	if seq.Len() <= 3 {
		return newRuneFinder(seq, b.complete)
	}

	// Larger ASCII-only alternation sets hand off to the Aho-Corasick
	// automaton, which amortizes the branching across all alternatives in
	// one pass instead of rescanning per needle.
	if seq.AllASCII() {
		if f := newAhoCorasickFinder(seq, b.complete); f != nil {
			return f
		}
	}

	// Many literals with no ASCII guarantee: not worth prefiltering, fall
	// back to the matcher running unaided.
	return nil
}
