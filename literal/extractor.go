package literal

import "github.com/coregx/rex/parser"

// Config bounds how much work ExtractPrefixes/ExtractSuffixes will do on a
// pathological pattern (a long run of alternations, or deeply nested
// groups), mirroring the teacher's ExtractorConfig.
type Config struct {
	// MaxLiterals caps how many alternative literals a single Seq may hold.
	MaxLiterals int
	// MaxLiteralLen caps the rune length of any one literal.
	MaxLiteralLen int
}

// DefaultConfig returns extraction limits suited to ordinary patterns.
func DefaultConfig() Config {
	return Config{MaxLiterals: 64, MaxLiteralLen: 64}
}

const maxExtractDepth = 1000

// Extractor walks a parsed tree (read-only) to pull out the literal rune
// runs a prefilter can search for ahead of the backtracking matcher.
type Extractor struct {
	config Config
}

// New builds an Extractor with the given limits.
func New(config Config) *Extractor { return &Extractor{config: config} }

// ExtractPrefixes returns the literals that must appear at the start of
// any match of tree, or an empty Seq if no such requirement can be pinned
// down (e.g. the pattern starts with "." or a star-quantified run).
func (e *Extractor) ExtractPrefixes(tree *parser.Tree) *Seq {
	seq := e.extractPrefixes(tree, tree.Root, 0)
	if seq.Len() == 1 && seq.Get(0).Len() == 0 {
		return NewSeq()
	}
	return seq
}

func (e *Extractor) extractPrefixes(tree *parser.Tree, id parser.ExprID, depth int) *Seq {
	if depth > maxExtractDepth {
		return NewSeq()
	}
	n := tree.Node(id)
	switch n.Tag {
	case parser.EmptyExpr:
		return NewSeq(NewLiteral(nil, true))

	case parser.CharExpr:
		if n.IsDot || n.Quant != parser.None {
			return NewSeq()
		}
		runes := []rune{n.Char}
		if len(runes) > e.config.MaxLiteralLen {
			runes = runes[:e.config.MaxLiteralLen]
		}
		return NewSeq(NewLiteral(runes, true))

	case parser.GroupExpr:
		if n.Quant != parser.None {
			return NewSeq()
		}
		return e.extractPrefixes(tree, n.Children[0], depth+1)

	case parser.AlternationExpr:
		return e.unionBranches(tree, n.Children, depth, e.extractPrefixes)

	case parser.ConcatenationExpr:
		return e.crossProduct(tree, n.Children, depth, e.extractPrefixes)

	default:
		return NewSeq()
	}
}

// ExtractSuffixes returns the literals that must appear at the end of any
// match of tree, symmetric to ExtractPrefixes.
func (e *Extractor) ExtractSuffixes(tree *parser.Tree) *Seq {
	seq := e.extractSuffixes(tree, tree.Root, 0)
	if seq.Len() == 1 && seq.Get(0).Len() == 0 {
		return NewSeq()
	}
	return seq
}

func (e *Extractor) extractSuffixes(tree *parser.Tree, id parser.ExprID, depth int) *Seq {
	if depth > maxExtractDepth {
		return NewSeq()
	}
	n := tree.Node(id)
	switch n.Tag {
	case parser.EmptyExpr:
		return NewSeq(NewLiteral(nil, true))

	case parser.CharExpr:
		if n.IsDot || n.Quant != parser.None {
			return NewSeq()
		}
		runes := []rune{n.Char}
		if len(runes) > e.config.MaxLiteralLen {
			runes = runes[len(runes)-e.config.MaxLiteralLen:]
		}
		return NewSeq(NewLiteral(runes, true))

	case parser.GroupExpr:
		if n.Quant != parser.None {
			return NewSeq()
		}
		return e.extractSuffixes(tree, n.Children[0], depth+1)

	case parser.AlternationExpr:
		return e.unionBranches(tree, n.Children, depth, e.extractSuffixes)

	case parser.ConcatenationExpr:
		reversed := make([]parser.ExprID, len(n.Children))
		for i, c := range n.Children {
			reversed[len(n.Children)-1-i] = c
		}
		return e.crossProductSuffix(tree, reversed, depth)

	default:
		return NewSeq()
	}
}

// unionBranches extracts lits from every child via extract and unions them;
// if any branch has no requirement, neither does the alternation as a
// whole ("abc|.*" requires nothing, since the second branch covers
// strings without "abc"). A union of more than MaxLiterals literals also
// yields no requirement, since a partial set would miss matches.
func (e *Extractor) unionBranches(tree *parser.Tree, children []parser.ExprID, depth int, extract func(*parser.Tree, parser.ExprID, int) *Seq) *Seq {
	var all []Literal
	for _, child := range children {
		seq := extract(tree, child, depth+1)
		if seq.IsEmpty() {
			return NewSeq()
		}
		for i := 0; i < seq.Len(); i++ {
			all = append(all, seq.Get(i))
			if len(all) > e.config.MaxLiterals {
				return NewSeq()
			}
		}
	}
	return NewSeq(all...)
}

// crossProduct walks a concatenation's children left to right, extending
// the accumulated literal set with each child's contribution until a
// non-expandable child (a dot, a quantified run) is hit.
func (e *Extractor) crossProduct(tree *parser.Tree, children []parser.ExprID, depth int, extract func(*parser.Tree, parser.ExprID, int) *Seq) *Seq {
	acc := NewSeq(NewLiteral(nil, true))
	for _, child := range children {
		if !hasAnyExact(acc) {
			break
		}
		contribution := extract(tree, child, depth+1)
		if contribution.IsEmpty() {
			markAllInexact(acc)
			break
		}
		acc.CrossForward(contribution)
		if acc.Len() > e.config.MaxLiterals {
			acc.KeepFirstRunes(4)
			acc.Dedup()
			if acc.Len() > e.config.MaxLiterals {
				return NewSeq()
			}
			break
		}
		enforceMaxLiteralLen(acc, e.config.MaxLiteralLen)
	}
	return acc
}

// crossProductSuffix is crossProduct's mirror: children is already in
// reverse (last-to-first) order, and each contribution is prepended
// instead of appended.
func (e *Extractor) crossProductSuffix(tree *parser.Tree, reversedChildren []parser.ExprID, depth int) *Seq {
	acc := NewSeq(NewLiteral(nil, true))
	for _, child := range reversedChildren {
		if !hasAnyExact(acc) {
			break
		}
		contribution := e.extractSuffixes(tree, child, depth+1)
		if contribution.IsEmpty() {
			markAllInexact(acc)
			break
		}
		// Prepend: contribution runs before the accumulated suffix.
		swapped := NewSeq(acc.literals...)
		acc = contribution.Clone()
		acc.CrossForward(swapped)
		if acc.Len() > e.config.MaxLiterals {
			// Keep the last 4 runes: a suffix truncated at its front is
			// still a suffix of every match.
			for i := range acc.literals {
				if r := acc.literals[i].Runes; len(r) > 4 {
					acc.literals[i].Runes = r[len(r)-4:]
				}
				acc.literals[i].Complete = false
			}
			acc.Dedup()
			if acc.Len() > e.config.MaxLiterals {
				return NewSeq()
			}
			break
		}
		enforceSuffixMaxLen(acc, e.config.MaxLiteralLen)
	}
	return acc
}

func hasAnyExact(s *Seq) bool {
	for _, lit := range s.literals {
		if lit.Complete {
			return true
		}
	}
	return false
}

func markAllInexact(s *Seq) {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
}

func enforceMaxLiteralLen(s *Seq, max int) {
	for i := range s.literals {
		if len(s.literals[i].Runes) > max {
			s.literals[i].Runes = s.literals[i].Runes[:max]
			s.literals[i].Complete = false
		}
	}
}

func enforceSuffixMaxLen(s *Seq, max int) {
	for i := range s.literals {
		if len(s.literals[i].Runes) > max {
			s.literals[i].Runes = s.literals[i].Runes[len(s.literals[i].Runes)-max:]
			s.literals[i].Complete = false
		}
	}
}
