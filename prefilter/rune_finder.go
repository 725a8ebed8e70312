package prefilter

import "github.com/coregx/rex/literal"

// runeFinder scans for the first occurrence of any of a small set of
// needles (at most 3, per Builder.Build's selection) directly over
// runes. The scan loop — check a candidate position's leading rune
// against the needle set, then verify the rest of the needle on a
// quick-reject pass before advancing — is the same element-by-element
// shape the teacher's generic byte scanner falls back to for small
// inputs; there is no rune-granularity equivalent of its 8-byte SWAR
// word trick to carry over; see DESIGN.md.
type runeFinder struct {
	needles  [][]rune
	complete bool
}

func newRuneFinder(seq *literal.Seq, complete bool) *runeFinder {
	needles := make([][]rune, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		needles[i] = append([]rune(nil), lit.Runes...)
		if !lit.Complete {
			complete = false
		}
	}
	return &runeFinder{needles: needles, complete: complete}
}

func (f *runeFinder) Find(target []rune, start int) (s, e int, ok bool) {
	for i := start; i < len(target); i++ {
		for _, needle := range f.needles {
			if matchesAt(target, i, needle) {
				return i, i + len(needle), true
			}
		}
	}
	return 0, 0, false
}

func (f *runeFinder) IsComplete() bool { return f.complete }

func matchesAt(target []rune, pos int, needle []rune) bool {
	if pos+len(needle) > len(target) {
		return false
	}
	for i, r := range needle {
		if target[pos+i] != r {
			return false
		}
	}
	return true
}
