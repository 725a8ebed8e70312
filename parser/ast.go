// Package parser implements the recursive-descent builder that turns a
// scanner token stream into an expression tree.
//
// Nodes live in a Tree's flat Nodes slice and reference each other by
// ExprID, an index into that slice, rather than by pointer. This avoids the
// parent/child cycle a pointer-based tree would need for any upward
// traversal: the matcher never walks up from a child, so no parent links
// are kept at all.
package parser

import (
	"fmt"

	"github.com/coregx/rex/internal/conv"
)

// Quantifier describes how many times an expression repeats. All variants
// are greedy.
type Quantifier uint8

const (
	// None means exactly one occurrence.
	None Quantifier = iota
	// ZeroOrOne is `?`.
	ZeroOrOne
	// ZeroOrMore is `*`.
	ZeroOrMore
	// OneOrMore is `+`.
	OneOrMore
)

// String returns the source spelling of the quantifier, or "" for None.
func (q Quantifier) String() string {
	switch q {
	case None:
		return ""
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	default:
		return fmt.Sprintf("Quantifier(%d)", uint8(q))
	}
}

// Tag identifies the kind of an Expr node.
type Tag uint8

const (
	// EmptyExpr matches the empty string.
	EmptyExpr Tag = iota
	// CharExpr matches a single character, or any character when IsDot.
	CharExpr
	// GroupExpr wraps exactly one child expression.
	GroupExpr
	// AlternationExpr holds two or more ordered alternatives.
	AlternationExpr
	// ConcatenationExpr holds two or more expressions in sequence.
	ConcatenationExpr
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case EmptyExpr:
		return "Empty"
	case CharExpr:
		return "Char"
	case GroupExpr:
		return "Group"
	case AlternationExpr:
		return "Alternation"
	case ConcatenationExpr:
		return "Concatenation"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// ExprID indexes a node inside a Tree's arena. The zero value is a valid
// index (the tree's root is always built last and is never 0 except for
// single-node trees), so InvalidExpr is out of range instead of zero.
type ExprID uint32

// InvalidExpr is never a valid index into any Tree.
const InvalidExpr ExprID = 1<<32 - 1

// Expr is one node of the expression tree. Only the fields relevant to its
// Tag are meaningful:
//   - CharExpr uses Char and IsDot (IsDot true means "any character").
//   - GroupExpr uses Children[0] as its single inner expression.
//   - AlternationExpr and ConcatenationExpr use all of Children, in order.
type Expr struct {
	Tag      Tag
	Quant    Quantifier
	Char     rune
	IsDot    bool
	Children []ExprID
}

// Tree is the arena a parse produces: a flat slice of nodes plus the index
// of the root node. Children and Group bodies are referenced by ExprID,
// never by pointer.
type Tree struct {
	Nodes []Expr
	Root  ExprID
}

// Node returns a pointer to the node at id. The tree is immutable once
// parsing completes, so callers (the matcher) only ever read through it.
func (t *Tree) Node(id ExprID) *Expr {
	return &t.Nodes[id]
}

// alloc appends a node to the arena and returns its ExprID. Converts
// through conv.IntToUint32 rather than a bare cast so a pattern nested or
// repeated enough to overflow a uint32 index panics immediately at the
// allocation site instead of silently wrapping into a colliding ExprID.
func (t *Tree) alloc(e Expr) ExprID {
	t.Nodes = append(t.Nodes, e)
	return ExprID(conv.IntToUint32(len(t.Nodes) - 1))
}
