package ast

import (
	"fmt"
	"strconv"

	"github.com/corvidlang/corvid/lang/token"
)

type (
	// NumberExpr represents a number literal.
	NumberExpr struct {
		ValuePos token.Pos
		Value    float64
	}

	// StringExpr represents a string literal.
	StringExpr struct {
		ValuePos token.Pos
		Value    string
	}

	// IdentExpr represents an identifier, either a reference or a binding
	// occurrence (in VarDecl.Name, FunDecl.Name/Params).
	IdentExpr struct {
		NamePos token.Pos
		Name    string
	}

	// BinaryExpr represents a binary operation: Expr Op Expr, where Op is one
	// of +, -, * or /.
	BinaryExpr struct {
		Left  Expr
		OpPos token.Pos
		Op    token.Token
		Right Expr
	}

	// CallExpr represents a function call: Fun `(` Args `)`.
	CallExpr struct {
		Fun    Expr
		Lparen token.Pos
		Args   []Expr
		Rparen token.Pos
	}
)

func (*NumberExpr) expr() {}
func (*StringExpr) expr() {}
func (*IdentExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*CallExpr) expr()   {}

func (n *NumberExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, strconv.FormatFloat(n.Value, 'g', -1, 64), nil)
}
func (n *NumberExpr) Span() (start, end token.Pos) {
	return n.ValuePos, n.ValuePos
}
func (n *NumberExpr) Walk(_ Visitor) {}

func (n *StringExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, strconv.Quote(n.Value), nil)
}
func (n *StringExpr) Span() (start, end token.Pos) {
	return n.ValuePos, n.ValuePos
}
func (n *StringExpr) Walk(_ Visitor) {}

func (n *IdentExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name, nil) }
func (n *IdentExpr) Span() (start, end token.Pos)  { return n.NamePos, n.NamePos }
func (n *IdentExpr) Walk(_ Visitor)                {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Op.String(), nil) }
func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() (start, end token.Pos) {
	start, _ = n.Fun.Span()
	return start, n.Rparen
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Fun)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
