package prefilter

import (
	"sort"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rex/literal"
)

// ahoCorasickFinder wraps an Aho-Corasick automaton for literal sets too
// large for runeFinder's linear needle scan to stay cheap. It is only
// built for ASCII-only literal sets, but the target it searches is under no
// such guarantee — a pattern's literals can be pure ASCII while the target
// still carries multi-byte runes around them — so Find re-encodes target to
// UTF-8 bytes on every call and translates offsets in both directions
// rather than assuming byte and rune offsets coincide.
type ahoCorasickFinder struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func newAhoCorasickFinder(seq *literal.Seq, complete bool) *ahoCorasickFinder {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if !lit.Complete {
			complete = false
		}
		builder.AddPattern([]byte(string(lit.Runes)))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickFinder{auto: auto, complete: complete}
}

func (f *ahoCorasickFinder) Find(target []rune, start int) (s, e int, ok bool) {
	// runeOffsets[i] is the byte offset of target's i'th rune; runeOffsets
	// at len(target) is the total byte length. Every matched literal is
	// pure ASCII, so a match's byte bounds always land exactly on one of
	// these offsets — sort.Search below never has to round.
	runeOffsets := make([]int, len(target)+1)
	haystack := make([]byte, 0, len(target))
	for i, r := range target {
		runeOffsets[i] = len(haystack)
		haystack = utf8.AppendRune(haystack, r)
	}
	runeOffsets[len(target)] = len(haystack)

	m := f.auto.Find(haystack, runeOffsets[start])
	if m == nil {
		return 0, 0, false
	}
	return runeIndexOf(runeOffsets, m.Start), runeIndexOf(runeOffsets, m.End), true
}

// runeIndexOf returns the rune index whose byte offset is byteOffset, via
// binary search over the monotonically increasing runeOffsets table.
func runeIndexOf(runeOffsets []int, byteOffset int) int {
	return sort.Search(len(runeOffsets), func(i int) bool { return runeOffsets[i] >= byteOffset })
}

func (f *ahoCorasickFinder) IsComplete() bool { return f.complete }
