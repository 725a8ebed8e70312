package matcher

import (
	"testing"

	"github.com/coregx/rex/parser"
)

type match struct{ start, end int }

func allMatches(t *testing.T, pattern, target string) []match {
	t.Helper()
	tree, err := parser.Parse(pattern, parser.DefaultMaxRecursionDepth)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	m := New(tree, target)
	var got []match
	for {
		s, e, ok := m.Next()
		if !ok {
			break
		}
		got = append(got, match{s, e})
		if len(got) > len([]rune(target))+4 {
			t.Fatalf("Next() did not terminate for pattern %q target %q", pattern, target)
		}
	}
	return got
}

func assertMatches(t *testing.T, pattern, target string, want []match) {
	t.Helper()
	got := allMatches(t, pattern, target)
	if len(got) != len(want) {
		t.Fatalf("pattern %q target %q: got %d matches %v, want %d matches %v", pattern, target, len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("pattern %q target %q: match[%d] = %v, want %v", pattern, target, i, got[i], want[i])
		}
	}
}

// TestWorkedScenarios replays spec.md §8's end-to-end scenario table.
func TestWorkedScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  string
		want    []match
	}{
		{"1 empty pattern", "", "abc", []match{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"2 literal char", "a", "banana", []match{{1, 2}, {3, 4}, {5, 6}}},
		{"3 star greedy", "a*", "aaabaa", []match{{0, 3}, {4, 6}, {6, 6}}},
		{"4 plus then literal", "a+b", "aaabab", []match{{0, 4}, {4, 6}}},
		{"5 quantified group", "(ab)+", "ababcab", []match{{0, 4}, {5, 7}}},
		// "bc" occurs at [2,4) and again at [4,6).
		{"6 ordered alternation", "a|bc", "xabcbc", []match{{1, 2}, {2, 4}, {4, 6}}},
		{"7 dot", ".", "ab", []match{{0, 1}, {1, 2}}},
		// A greedy `.*` bridges all the way to the *last* `)` in the
		// target before backtracking succeeds (classical backtracking
		// behaviour: the same reason `\(.*\)` famously over-matches in
		// any PCRE-style engine) — consuming "(hi)y(ok)" as one run,
		// not stopping at the first closing paren. See DESIGN.md.
		{"8 escaped parens with star", `\(.*\)`, "x(hi)y(ok)", []match{{1, 10}}},
		{"9 optional then literal", "a?b", "bab", []match{{0, 1}, {1, 3}}},
		{"10 group alternation plus literal", "(a|b)+c", "aabac", []match{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatches(t, tt.pattern, tt.target, tt.want)
		})
	}
}

func TestBacktrackAcrossConcatenation(t *testing.T) {
	// Classic greedy-then-contract: a* must give back one character so
	// the trailing literal 'a' can match.
	assertMatches(t, "a*a", "aaa", []match{{0, 3}})
}

func TestBacktrackThroughGroup(t *testing.T) {
	// Same contraction, but the repeating run is wrapped in a
	// non-repeating group, exercising the group's own BacktrackEntry.
	assertMatches(t, "(a*)a", "aaa", []match{{0, 3}})
}

func TestEmptyHandlingProperty(t *testing.T) {
	// A nullable pattern yields exactly one empty match at every
	// position 0..len(target) inclusive, then terminates.
	for _, target := range []string{"", "x", "xyz"} {
		want := make([]match, len([]rune(target))+1)
		for i := range want {
			want[i] = match{i, i}
		}
		assertMatches(t, "a?", target, want)
	}
}

func TestNonOverlapProperty(t *testing.T) {
	got := allMatches(t, "a", "aaaa")
	for i := 1; i < len(got); i++ {
		if got[i-1].end > got[i].start {
			t.Errorf("matches overlap: %v then %v", got[i-1], got[i])
		}
	}
}

func TestOrderedAlternationProperty(t *testing.T) {
	// "a|ab" must always take the first branch at a given anchor, even
	// though the second branch would consume more.
	assertMatches(t, "a|ab", "ab", []match{{0, 1}})
}

func TestGreedinessProperty(t *testing.T) {
	assertMatches(t, "a+", "aaa", []match{{0, 3}})
}

// stubPrefilter reports the first occurrence of needle at or after start,
// standing in for a real prefilter.Prefilter without importing that package.
type stubPrefilter struct {
	needle []rune
	calls  int
}

func (s *stubPrefilter) Find(target []rune, start int) (int, int, bool) {
	s.calls++
	for i := start; i+len(s.needle) <= len(target); i++ {
		match := true
		for j, r := range s.needle {
			if target[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i, i + len(s.needle), true
		}
	}
	return 0, 0, false
}

func TestSetPrefilterNarrowsSearch(t *testing.T) {
	tree, err := parser.Parse("ab*c", parser.DefaultMaxRecursionDepth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(tree, "xxabbcxx")
	pf := &stubPrefilter{needle: []rune("a")}
	m.SetPrefilter(pf)

	s, e, ok := m.Next()
	if !ok || s != 2 || e != 6 {
		t.Fatalf("Next() = (%d,%d,%v), want (2,6,true)", s, e, ok)
	}
	if pf.calls == 0 {
		t.Error("prefilter was never consulted")
	}
	if _, _, ok := m.Next(); ok {
		t.Fatal("expected exhaustion after the only match")
	}
}

func TestSetPrefilterNoOccurrenceStopsSearch(t *testing.T) {
	tree, err := parser.Parse("ab*c", parser.DefaultMaxRecursionDepth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(tree, "xxxxxx")
	m.SetPrefilter(&stubPrefilter{needle: []rune("a")})

	if _, _, ok := m.Next(); ok {
		t.Fatal("expected no match when the prefilter never reports an occurrence")
	}
}

func TestRebind(t *testing.T) {
	tree, err := parser.Parse("a+", parser.DefaultMaxRecursionDepth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := New(tree, "aaa")
	if s, e, ok := m.Next(); !ok || s != 0 || e != 3 {
		t.Fatalf("first Next() = (%d,%d,%v), want (0,3,true)", s, e, ok)
	}
	if _, _, ok := m.Next(); ok {
		t.Fatalf("expected exhaustion before Rebind")
	}
	m.Rebind("aa")
	if s, e, ok := m.Next(); !ok || s != 0 || e != 2 {
		t.Fatalf("Next() after Rebind = (%d,%d,%v), want (0,2,true)", s, e, ok)
	}
}
