package matcher

import "github.com/coregx/rex/parser"

// computeBacktrackable precomputes, for every node in tree, whether it
// supports backtracking (spec §4.3.2):
//   - Char with a quantifier other than None.
//   - Group whose own quantifier is non-None, or whose inner expression
//     supports backtracking.
//   - Alternation or Concatenation with at least one backtrackable child.
//   - Empty never does.
//
// The parser always allocates a node's children before the node itself
// (parsePrimary/parseRegexp finish building a subtree before calling
// Tree.alloc on the node that wraps it), so every child's ExprID is
// numerically smaller than its parent's. A single forward pass over the
// arena can therefore compute this bottom-up without recursion.
func computeBacktrackable(tree *parser.Tree) []bool {
	bt := make([]bool, len(tree.Nodes))
	for id := range tree.Nodes {
		n := &tree.Nodes[id]
		switch n.Tag {
		case parser.CharExpr:
			bt[id] = n.Quant != parser.None
		case parser.GroupExpr:
			bt[id] = n.Quant != parser.None || bt[n.Children[0]]
		case parser.AlternationExpr, parser.ConcatenationExpr:
			for _, c := range n.Children {
				if bt[c] {
					bt[id] = true
					break
				}
			}
		}
	}
	return bt
}
