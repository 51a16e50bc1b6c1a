package ast

import (
	"fmt"

	"github.com/corvidlang/corvid/lang/token"
)

type (
	// PrintStmt represents `print` `(` Expr `)` `;`.
	PrintStmt struct {
		Print  token.Pos
		Lparen token.Pos
		X      Expr
		Rparen token.Pos
		Semi   token.Pos
	}

	// AssignStmt represents Ident `=` Expr `;`.
	AssignStmt struct {
		Left   *IdentExpr
		Assign token.Pos
		Right  Expr
		Semi   token.Pos
	}

	// ExprStmt represents an expression used as a statement, e.g. a bare
	// function call.
	ExprStmt struct {
		X    Expr
		Semi token.Pos
	}

	// VarDecl represents `var` Ident (`=` Expr)? `;`.
	VarDecl struct {
		Var    token.Pos
		Name   *IdentExpr
		Assign token.Pos // NoPos if there is no initializer
		Value  Expr      // nil if there is no initializer
		Semi   token.Pos
	}

	// FunDecl represents `fun` Ident `(` Params `)` `{` Statement* `}`.
	FunDecl struct {
		Fun    token.Pos
		Name   *IdentExpr
		Lparen token.Pos
		Params []*IdentExpr
		Rparen token.Pos
		Lbrace token.Pos
		Body   []Stmt
		Rbrace token.Pos
	}

	// ReturnStmt represents `return` Expr? `;`.
	ReturnStmt struct {
		Return token.Pos
		X      Expr // nil if the return carries no value
		Semi   token.Pos
	}
)

func (*PrintStmt) stmt()  {}
func (*AssignStmt) stmt() {}
func (*ExprStmt) stmt()   {}
func (*VarDecl) stmt()    {}
func (*FunDecl) stmt()    {}
func (*ReturnStmt) stmt() {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Span() (start, end token.Pos)  { return n.Print, n.Semi }
func (n *PrintStmt) Walk(v Visitor)                { Walk(v, n.X) }

func (n *AssignStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "assign", nil) }
func (n *AssignStmt) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	return start, n.Semi
}
func (n *AssignStmt) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *ExprStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExprStmt) Span() (start, end token.Pos) {
	start, _ = n.X.Span()
	return start, n.Semi
}
func (n *ExprStmt) Walk(v Visitor) { Walk(v, n.X) }

func (n *VarDecl) Format(f fmt.State, verb rune) { format(f, verb, n, "var "+n.Name.Name, nil) }
func (n *VarDecl) Span() (start, end token.Pos)  { return n.Var, n.Semi }
func (n *VarDecl) Walk(v Visitor) {
	Walk(v, n.Name)
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

func (n *FunDecl) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fun "+n.Name.Name, map[string]int{"params": len(n.Params), "body": len(n.Body)})
}
func (n *FunDecl) Span() (start, end token.Pos) { return n.Fun, n.Rbrace }
func (n *FunDecl) Walk(v Visitor) {
	Walk(v, n.Name)
	for _, p := range n.Params {
		Walk(v, p)
	}
	for _, s := range n.Body {
		Walk(v, s)
	}
}

func (n *ReturnStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "return", nil) }
func (n *ReturnStmt) Span() (start, end token.Pos)  { return n.Return, n.Semi }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.X != nil {
		Walk(v, n.X)
	}
}
