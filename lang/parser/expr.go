package parser

import (
	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/token"
)

// parseExpr parses an expression via the precedence ladder:
//
//	Expr -> Term -> Factor (+/-) -> Call (*//) -> Primary (call) -> Primary
func (p *parser) parseExpr() ast.Expr {
	return p.parseTerm()
}

// parseTerm handles the lowest-precedence binary operators, + and -.
func (p *parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for p.tok == token.PLUS || p.tok == token.MINUS {
		op := p.tok
		pos := p.val.Pos
		p.advance()
		right := p.parseFactor()
		left = &ast.BinaryExpr{Left: left, OpPos: pos, Op: op, Right: right}
	}
	return left
}

// parseFactor handles * and /, binding tighter than + and -.
func (p *parser) parseFactor() ast.Expr {
	left := p.parseCall()
	for p.tok == token.STAR || p.tok == token.SLASH {
		op := p.tok
		pos := p.val.Pos
		p.advance()
		right := p.parseCall()
		left = &ast.BinaryExpr{Left: left, OpPos: pos, Op: op, Right: right}
	}
	return left
}

// parseCall handles zero or more trailing calls on a primary expression,
// e.g. f(1)(2).
func (p *parser) parseCall() ast.Expr {
	x := p.parsePrimary()
	for p.tok == token.LPAREN {
		lparen := p.expect(token.LPAREN)
		var args []ast.Expr
		for p.tok != token.RPAREN {
			args = append(args, p.parseExpr())
			if p.tok != token.COMMA {
				break
			}
			p.advance() // consume comma, allows trailing comma
		}
		rparen := p.expect(token.RPAREN)
		x = &ast.CallExpr{Fun: x, Lparen: lparen, Args: args, Rparen: rparen}
	}
	return x
}

// parsePrimary parses a number, string or identifier.
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.NUMBER:
		pos, val := p.val.Pos, p.val.Num
		p.advance()
		return &ast.NumberExpr{ValuePos: pos, Value: val}
	case token.STRING:
		pos, val := p.val.Pos, p.val.Str
		p.advance()
		return &ast.StringExpr{ValuePos: pos, Value: val}
	case token.IDENT:
		return p.parseIdent()
	default:
		p.errorExpected(p.val.Pos, "expression")
		panic(errPanicMode)
	}
}
