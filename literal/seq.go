// Package literal extracts literal rune sequences from a parsed pattern for
// prefilter optimization: scanning for a concrete substring is far cheaper than stepping the backtracking matcher at every
// position, so a prefilter narrows candidate start positions before the
// matcher ever runs.
//
// A Literal is one concrete rune sequence that may be required by a match.
// A Seq is the set of alternative literals a prefilter should look for
// (e.g. both branches of an alternation). These mirror the byte-oriented
// Literal/Seq pair from the teacher's literal extractor, generalized from
// []byte to []rune since this pattern language addresses its target by
// character, not by byte.
package literal

import "sort"

// Literal is one literal rune sequence extracted from a pattern.
// Complete reports whether Runes is the entire remainder of the match at
// that point (true) or merely a required prefix/substring with more
// pattern following it (false, e.g. the "a" extracted from "a.*").
type Literal struct {
	Runes    []rune
	Complete bool
}

// NewLiteral builds a Literal from the given runes and completeness flag.
func NewLiteral(runes []rune, complete bool) Literal {
	return Literal{Runes: runes, Complete: complete}
}

// Len returns the number of runes in the literal.
func (l Literal) Len() int { return len(l.Runes) }

func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Runes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals, any one of which may anchor a
// prefilter search (e.g. the branches "foo" and "bar" extracted from the
// pattern "foo|bar").
type Seq struct {
	literals []Literal
}

// NewSeq builds a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

// IsEmpty reports whether the sequence has no literals, meaning no
// prefilter can be built from it.
func (s *Seq) IsEmpty() bool { return s == nil || len(s.literals) == 0 }

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		runes := make([]rune, len(lit.Runes))
		copy(runes, lit.Runes)
		cloned[i] = Literal{Runes: runes, Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize drops any literal that has a shorter literal in the sequence as
// a prefix: every position where the longer one occurs is already found by
// a search for the shorter one, so the longer one adds nothing to a
// prefilter search.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Runes) < len(s.literals[j].Runes)
	})
	kept := make([]Literal, 0, len(s.literals))
	for _, cur := range s.literals {
		redundant := false
		for _, k := range kept {
			if isRunePrefix(k.Runes, cur.Runes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, cur)
		}
	}
	s.literals = kept
}

// Dedup removes exact duplicate literals, ignoring Complete.
func (s *Seq) Dedup() {
	if s.IsEmpty() {
		return
	}
	seen := make(map[string]bool, len(s.literals))
	kept := make([]Literal, 0, len(s.literals))
	for _, lit := range s.literals {
		key := string(lit.Runes)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, lit)
	}
	s.literals = kept
}

// KeepFirstRunes truncates every literal to its first n runes (or fewer)
// and marks the sequence's literals as inexact, since truncation discards
// information about what the full match requires.
func (s *Seq) KeepFirstRunes(n int) {
	if s.IsEmpty() {
		return
	}
	for i := range s.literals {
		if len(s.literals[i].Runes) > n {
			s.literals[i].Runes = s.literals[i].Runes[:n]
		}
		s.literals[i].Complete = false
	}
}

// CrossForward extends every literal in s with every literal in next,
// producing the cross-product s[i]+next[j] for all i, j. Used while
// walking a concatenation: each additional sibling's contribution extends
// every literal accumulated so far.
func (s *Seq) CrossForward(next *Seq) {
	if next.IsEmpty() {
		return
	}
	if s.IsEmpty() {
		s.literals = next.Clone().literals
		return
	}
	out := make([]Literal, 0, len(s.literals)*len(next.literals))
	for _, a := range s.literals {
		for _, b := range next.literals {
			runes := make([]rune, 0, len(a.Runes)+len(b.Runes))
			runes = append(runes, a.Runes...)
			runes = append(runes, b.Runes...)
			out = append(out, Literal{Runes: runes, Complete: a.Complete && b.Complete})
		}
	}
	s.literals = out
}

// LongestCommonPrefix returns the longest rune sequence shared as a prefix
// by every literal in the sequence.
func (s *Seq) LongestCommonPrefix() []rune {
	if s.IsEmpty() {
		return nil
	}
	prefix := s.literals[0].Runes
	for _, lit := range s.literals[1:] {
		prefix = commonPrefix(prefix, lit.Runes)
		if len(prefix) == 0 {
			return nil
		}
	}
	out := make([]rune, len(prefix))
	copy(out, prefix)
	return out
}

// LongestCommonSuffix returns the longest rune sequence shared as a suffix
// by every literal in the sequence.
func (s *Seq) LongestCommonSuffix() []rune {
	if s.IsEmpty() {
		return nil
	}
	suffix := s.literals[0].Runes
	for _, lit := range s.literals[1:] {
		suffix = commonSuffix(suffix, lit.Runes)
		if len(suffix) == 0 {
			return nil
		}
	}
	out := make([]rune, len(suffix))
	copy(out, suffix)
	return out
}

// DistinctLeading returns the set of distinct first runes across every
// literal, or ok=false if any literal is empty or the set exceeds max
// (used to decide whether a small-alphabet prefilter like a 2/3-rune
// finder applies).
func (s *Seq) DistinctLeading(max int) (runes []rune, ok bool) {
	if s.IsEmpty() {
		return nil, false
	}
	seen := make(map[rune]bool)
	for _, lit := range s.literals {
		if len(lit.Runes) == 0 {
			return nil, false
		}
		seen[lit.Runes[0]] = true
		if len(seen) > max {
			return nil, false
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, true
}

// AllASCII reports whether every literal consists solely of ASCII runes.
func (s *Seq) AllASCII() bool {
	for _, lit := range s.literals {
		for _, r := range lit.Runes {
			if r > 0x7F {
				return false
			}
		}
	}
	return true
}

// Strings returns the sequence's literals rendered as strings, in order.
func (s *Seq) Strings() []string {
	out := make([]string, s.Len())
	for i, lit := range s.literals {
		out[i] = string(lit.Runes)
	}
	return out
}

func isRunePrefix(prefix, s []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func commonPrefix(a, b []rune) []rune {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func commonSuffix(a, b []rune) []rune {
	aLen, bLen := len(a), len(b)
	n := aLen
	if bLen < n {
		n = bLen
	}
	for i := 0; i < n; i++ {
		if a[aLen-1-i] != b[bLen-1-i] {
			if i == 0 {
				return nil
			}
			return a[aLen-i:]
		}
	}
	return a[aLen-n:]
}
