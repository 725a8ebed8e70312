// Package matcher implements the backtracking evaluator that walks a
// parsed expression tree against a target string and yields successive
// non-overlapping match ranges.
//
// The tree's nodes are addressed by parser.ExprID rather than by pointer
// or by the sibling-index path the original implementation used: since
// the parser's arena assigns every node a dense, stable index at
// construction time (children always get a lower ExprID than their
// parent — see backtrackable.go), that index already satisfies the
// "stable identity across concatenation restarts" property a path would
// have given, so backtrack state is kept in one slice indexed directly by
// ExprID instead of a sorted-and-binary-searched path table.
package matcher

import (
	"github.com/coregx/rex/internal/sparse"
	"github.com/coregx/rex/parser"
)

// entry is a BacktrackEntry: the most recent successful match recorded for
// one backtrackable subexpression, valid only within the current root
// attempt.
type entry struct {
	start, end int
	exhausted  bool
}

// Matcher evaluates one compiled pattern against one target string,
// yielding successive match ranges through repeated calls to Next. It is
// strictly single-threaded: a Matcher owns its target and all mutable
// state, and must not be shared across goroutines without external
// synchronisation.
type Matcher struct {
	tree          *parser.Tree
	backtrackable []bool

	target               []rune
	pos                  int
	matchedTrailingEmpty bool
	entries              []*entry

	// touched tracks which ExprIDs currently hold a live entry, so
	// clearEntries only has to visit the handful of nodes an attempt
	// actually matched instead of the whole arena — the same role a
	// sparse set plays clearing an NFA's visited-state set between steps.
	touched *sparse.SparseSet

	// pf, when set, narrows which start positions Next tries instead of
	// the plain rightward slide. It never changes which matches exist:
	// every candidate position a prefilter reports is still independently
	// verified by computeMatch.
	pf Prefilter
}

// Prefilter narrows which start positions Next tries. Satisfied
// structurally by prefilter.Prefilter, so this package does not need to
// import it.
type Prefilter interface {
	Find(target []rune, start int) (s, e int, ok bool)
}

// SetPrefilter installs pf so Next's outer loop asks it for the next
// viable start position at or after the cursor instead of trying every
// position in order. Passing nil removes any installed prefilter.
func (m *Matcher) SetPrefilter(pf Prefilter) {
	m.pf = pf
}

// New binds tree to target, positioned at offset 0 with empty backtrack
// state.
func New(tree *parser.Tree, target string) *Matcher {
	m := &Matcher{
		tree:          tree,
		backtrackable: computeBacktrackable(tree),
		entries:       make([]*entry, len(tree.Nodes)),
		touched:       sparse.NewSparseSet(uint32(len(tree.Nodes))),
	}
	m.Rebind(target)
	return m
}

// Rebind assigns a new target to match on, resetting position and all
// backtrack state.
func (m *Matcher) Rebind(target string) {
	m.target = []rune(target)
	m.pos = 0
	m.matchedTrailingEmpty = false
	m.clearEntries()
}

// SeekTo moves the matcher's cursor forward to pos without touching the
// target or the trailing-empty bookkeeping, skipping ahead to a
// prefilter-supplied candidate position instead of stepping through
// Next()'s one-character-at-a-time anchor slide. pos must be within
// [m.pos, len(m.target)]; seeking backward is rejected since it would
// violate the forward-progress guarantee Next() relies on.
func (m *Matcher) SeekTo(pos int) {
	if pos > m.pos && pos <= len(m.target) {
		m.pos = pos
	}
}

func (m *Matcher) clearEntries() {
	m.touched.Iter(func(id uint32) {
		m.entries[id] = nil
	})
	m.touched.Clear()
}

func (m *Matcher) entryFor(id parser.ExprID) *entry {
	return m.entries[id]
}

// recordEntry inserts or updates the BacktrackEntry for id, as
// compute_match's bookkeeping step (spec §4.3.2) describes: first success
// inserts, later successes overwrite start/end and exhausted.
func (m *Matcher) recordEntry(id parser.ExprID, start, end int) {
	if e := m.entries[id]; e != nil {
		e.start, e.end, e.exhausted = start, end, start == end
		return
	}
	m.entries[id] = &entry{start: start, end: end, exhausted: start == end}
	m.touched.Insert(uint32(id))
}

// Next advances the matcher and returns the next match range [start, end),
// or ok=false once the matcher is exhausted for the current target.
//
// This is the outer search loop of spec §4.3.1: the anchor slides
// rightward one character at a time between failed attempts, the
// backtrack table is cleared at the start of every attempt, and an empty
// match forces the next anchor one past its end to guarantee progress.
// When a Prefilter is installed, each attempt's anchor is the prefilter's
// next reported candidate rather than the immediately following position:
// this changes nothing about which matches are found, only how many dead
// positions computeMatch has to rule out in between.
func (m *Matcher) Next() (start, end int, ok bool) {
	if m.pos > len(m.target) && m.matchedTrailingEmpty {
		return 0, 0, false
	}
	if m.pos >= len(m.target) {
		m.matchedTrailingEmpty = true
	}

	for {
		if m.pf != nil {
			s, _, found := m.pf.Find(m.target, m.pos)
			if !found {
				return 0, 0, false
			}
			m.SeekTo(s)
		}
		m.clearEntries()
		s, e, matched := m.computeMatch(m.tree.Root)
		if matched {
			if e == s {
				m.pos = e + 1
			} else {
				m.pos = e
			}
			return s, e, true
		}
		if m.pos < len(m.target) {
			m.pos++
			continue
		}
		return 0, 0, false
	}
}

// computeMatch dispatches on id's tag and, on success, records or updates
// its BacktrackEntry when it is a non-root node that supports
// backtracking (spec §4.3.2).
func (m *Matcher) computeMatch(id parser.ExprID) (start, end int, ok bool) {
	n := m.tree.Node(id)
	switch n.Tag {
	case parser.EmptyExpr:
		start, end, ok = m.matchEmpty()
	case parser.CharExpr:
		start, end, ok = m.matchChar(id, n)
	case parser.GroupExpr:
		start, end, ok = m.matchGroup(id, n)
	case parser.AlternationExpr:
		start, end, ok = m.matchAlternation(n)
	case parser.ConcatenationExpr:
		start, end, ok = m.matchConcatenation(n)
	}
	if ok && id != m.tree.Root && m.backtrackable[id] {
		m.recordEntry(id, start, end)
	}
	return
}

// matchEmpty implements spec §4.3.3: always succeeds with [pos, pos).
func (m *Matcher) matchEmpty() (start, end int, ok bool) {
	return m.pos, m.pos, true
}

// matchChar implements spec §4.3.4, the greedy-with-bound rule for a
// Char or Dot node.
func (m *Matcher) matchChar(id parser.ExprID, n *parser.Expr) (start, end int, ok bool) {
	entryPos := m.pos
	bound := len(m.target)
	if e := m.entryFor(id); e != nil {
		bound = e.end - 1
		if bound < 0 {
			bound = 0
		}
	} else if n.Quant == parser.None || n.Quant == parser.ZeroOrOne {
		bound = entryPos + 1
	}

	c := entryPos
	for c < len(m.target) && c < bound && (n.IsDot || m.target[c] == n.Char) {
		c++
	}

	if c == entryPos {
		switch n.Quant {
		case parser.None, parser.OneOrMore:
			return 0, 0, false
		default:
			return entryPos, entryPos, true
		}
	}
	m.pos = c
	return entryPos, c, true
}

// matchGroup implements spec §4.3.5: descend into the single child,
// repeating it according to the group's own quantifier, bounded by the
// group's own BacktrackEntry when one exists.
func (m *Matcher) matchGroup(id parser.ExprID, n *parser.Expr) (start, end int, ok bool) {
	entryPos := m.pos
	bound := len(m.target)
	if e := m.entryFor(id); e != nil {
		bound = e.end - 1
		if bound < 0 {
			bound = 0
		}
	}

	child := n.Children[0]
	singleShot := n.Quant == parser.None || n.Quant == parser.ZeroOrOne

	pos := entryPos
	count := 0
	prevInnerEmpty := false
	for {
		m.pos = pos
		_, innerEnd, innerOK := m.computeMatch(child)
		if !innerOK {
			m.pos = pos
			break
		}
		if innerEnd > bound {
			m.pos = pos // roll back to the last good end, discard this attempt
			break
		}
		innerEmpty := innerEnd == pos
		pos = innerEnd
		count++
		if singleShot {
			break
		}
		if innerEmpty && prevInnerEmpty {
			break // an inner match was empty twice in a row: stop the spin
		}
		prevInnerEmpty = innerEmpty
	}

	if count == 0 {
		m.pos = entryPos
		if n.Quant == parser.None || n.Quant == parser.OneOrMore {
			return 0, 0, false
		}
		return entryPos, entryPos, true
	}
	m.pos = pos
	return entryPos, pos, true
}

// matchAlternation implements spec §4.3.6: try children left to right,
// resetting the cursor to the alternation's own entry position before
// each attempt, and return the first success.
func (m *Matcher) matchAlternation(n *parser.Expr) (start, end int, ok bool) {
	entryPos := m.pos
	for _, child := range n.Children {
		m.pos = entryPos
		_, e, cOK := m.computeMatch(child)
		if cOK {
			m.pos = e
			return entryPos, e, true
		}
	}
	m.pos = entryPos
	return 0, 0, false
}

// matchConcatenation implements spec §4.3.7. On a child's failure it
// looks for the nearest earlier sibling with a non-exhausted
// BacktrackEntry and resumes there, forcing that sibling's next attempt
// to contract via its own bound rule; if no such sibling exists the whole
// concatenation fails.
func (m *Matcher) matchConcatenation(n *parser.Expr) (start, end int, ok bool) {
	children := n.Children
	entryPos := m.pos
	lastEnd := entryPos

	i := 0
	for i < len(children) {
		child := children[i]

		if e := m.entryFor(child); e != nil && e.exhausted {
			if _, found := m.findPrev(children, i); found {
				// Re-arm: this child gets another chance now that an
				// earlier sibling has room to contract further.
				m.entries[child] = &entry{start: m.pos, end: len(m.target), exhausted: false}
			}
		}

		_, e, cOK := m.computeMatch(child)
		if cOK {
			lastEnd = e
			m.pos = e
			i++
			continue
		}

		prevIdx, found := m.findPrev(children, i)
		if !found {
			m.pos = entryPos
			return 0, 0, false
		}
		prev := m.entries[children[prevIdx]]
		m.pos = prev.start
		i = prevIdx
	}

	m.pos = lastEnd
	return entryPos, lastEnd, true
}

// findPrev returns the index of the nearest sibling before i whose
// BacktrackEntry exists and is not exhausted.
func (m *Matcher) findPrev(children []parser.ExprID, i int) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if e := m.entryFor(children[j]); e != nil && !e.exhausted {
			return j, true
		}
	}
	return -1, false
}
