package parser

import (
	"fmt"

	"github.com/coregx/rex/scanner"
)

// DefaultMaxRecursionDepth bounds parser (and later, matcher) recursion on
// pathologically nested patterns such as "((((((...))))))" when a caller
// does not supply its own limit.
const DefaultMaxRecursionDepth = 1000

// Parse scans and parses pattern into a Tree, enforcing maxDepth as the
// ceiling on nested Group/Regexp recursion. It returns a *scanner.LexError
// for a trailing unescaped `\`, or a *SyntaxError for anything the grammar
// below rejects.
//
// Grammar:
//
//	Regexp        := Concatenation ("|" Regexp)?
//	Concatenation := Primary+
//	Primary       := Empty | Group | Char | Dot
//	Group         := "(" Regexp ")" Quantifier?
//	Char          := Character Quantifier?
//	Dot           := "." Quantifier?
//	Quantifier    := "?" | "*" | "+"
func Parse(pattern string, maxDepth int) (*Tree, error) {
	p := &parser{sc: scanner.New(pattern), tree: &Tree{}, maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseRegexp()
	if err != nil {
		return nil, err
	}
	if !p.atEOF {
		return nil, p.errorf(p.cur.Position, "unbalanced %s", describe(p.cur))
	}
	p.tree.Root = root
	return p.tree, nil
}

type parser struct {
	sc       *scanner.Scanner
	tree     *Tree
	cur      scanner.Token
	atEOF    bool
	depth    int
	maxDepth int
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pattern: p.sc.Source(), Position: pos, Message: fmt.Sprintf(format, args...)}
}

// advance fetches the next lookahead token, or marks end-of-stream.
func (p *parser) advance() error {
	tok, ok, err := p.sc.Next()
	if err != nil {
		return err
	}
	if !ok {
		p.atEOF = true
		return nil
	}
	p.cur = tok
	p.atEOF = false
	return nil
}

// parseRegexp parses Concatenation ("|" Regexp)?, collecting alternatives
// iteratively so "a|b|c" becomes one flat Alternation rather than a chain
// of nested binary ones — Alternation's matcher walks a flat sibling list.
func (p *parser) parseRegexp() (ExprID, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return InvalidExpr, p.errorf(p.cur.Position, "pattern nesting exceeds maximum recursion depth")
	}

	first, err := p.parseConcatenation()
	if err != nil {
		return InvalidExpr, err
	}
	alts := []ExprID{first}
	for !p.atEOF && p.cur.Kind == scanner.Pipe {
		if err := p.advance(); err != nil {
			return InvalidExpr, err
		}
		next, err := p.parseConcatenation()
		if err != nil {
			return InvalidExpr, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return p.tree.alloc(Expr{Tag: AlternationExpr, Children: alts}), nil
}

// parseConcatenation parses Primary+. Once at least one primary has been
// collected, a `|` or `)` (or end of input) ends the concatenation; before
// that, those same tokens are a "primary expected" error — the scanner's
// synthetic Empty token is what makes a deliberately empty alternative
// parse instead of erroring here.
func (p *parser) parseConcatenation() (ExprID, error) {
	var kids []ExprID
	for {
		if len(kids) > 0 && (p.atEOF || p.cur.Kind == scanner.Pipe || p.cur.Kind == scanner.RightParen) {
			break
		}
		prim, err := p.parsePrimary()
		if err != nil {
			return InvalidExpr, err
		}
		kids = append(kids, prim)
	}
	if len(kids) == 1 {
		return kids[0], nil
	}
	return p.tree.alloc(Expr{Tag: ConcatenationExpr, Children: kids}), nil
}

// parsePrimary parses Empty | Group | Char | Dot, consuming the primary and
// any immediately following quantifier token.
func (p *parser) parsePrimary() (ExprID, error) {
	if p.atEOF {
		return InvalidExpr, p.errorf(0, "expected expression before end of pattern")
	}

	switch p.cur.Kind {
	case scanner.Empty:
		id := p.tree.alloc(Expr{Tag: EmptyExpr})
		if err := p.advance(); err != nil {
			return InvalidExpr, err
		}
		return id, nil

	case scanner.LeftParen:
		openPos := p.cur.Position
		if err := p.advance(); err != nil {
			return InvalidExpr, err
		}
		inner, err := p.parseRegexp()
		if err != nil {
			return InvalidExpr, err
		}
		if p.atEOF || p.cur.Kind != scanner.RightParen {
			return InvalidExpr, p.errorf(openPos, "unbalanced `(`")
		}
		if err := p.advance(); err != nil { // consume ')'
			return InvalidExpr, err
		}
		quant, err := p.parseQuantifier()
		if err != nil {
			return InvalidExpr, err
		}
		return p.tree.alloc(Expr{Tag: GroupExpr, Quant: quant, Children: []ExprID{inner}}), nil

	case scanner.Character:
		ch := p.cur.Value
		if err := p.advance(); err != nil {
			return InvalidExpr, err
		}
		quant, err := p.parseQuantifier()
		if err != nil {
			return InvalidExpr, err
		}
		return p.tree.alloc(Expr{Tag: CharExpr, Char: ch, Quant: quant}), nil

	case scanner.Dot:
		if err := p.advance(); err != nil {
			return InvalidExpr, err
		}
		quant, err := p.parseQuantifier()
		if err != nil {
			return InvalidExpr, err
		}
		return p.tree.alloc(Expr{Tag: CharExpr, IsDot: true, Quant: quant}), nil

	default:
		// Pipe, Mark, Star, Plus, or RightParen where a primary was
		// expected — including a second quantifier stacked on a
		// primary that already consumed one ("a**").
		return InvalidExpr, p.errorf(p.cur.Position, "expected expression before %s", describe(p.cur))
	}
}

// parseQuantifier consumes a trailing `?`, `*`, or `+`, if present.
func (p *parser) parseQuantifier() (Quantifier, error) {
	if p.atEOF {
		return None, nil
	}
	var q Quantifier
	switch p.cur.Kind {
	case scanner.Mark:
		q = ZeroOrOne
	case scanner.Star:
		q = ZeroOrMore
	case scanner.Plus:
		q = OneOrMore
	default:
		return None, nil
	}
	if err := p.advance(); err != nil {
		return None, err
	}
	return q, nil
}

// describe renders a token as it should appear in an "expected expression
// before X" / "unbalanced X" message.
func describe(tok scanner.Token) string {
	switch tok.Kind {
	case scanner.Pipe:
		return "`|`"
	case scanner.Mark:
		return "`?`"
	case scanner.Star:
		return "`*`"
	case scanner.Plus:
		return "`+`"
	case scanner.RightParen:
		return "`)`"
	case scanner.LeftParen:
		return "`(`"
	case scanner.Dot:
		return "`.`"
	case scanner.Character:
		return fmt.Sprintf("%q", tok.Value)
	default:
		return tok.Kind.String()
	}
}
