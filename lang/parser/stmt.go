package parser

import (
	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/token"
)

// parseStatement parses one Statement production:
//
//	Statement := PrintStmt | AssignStmt | ExprStmt | VarDecl | FunDecl | ReturnStmt
func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.PRINT:
		return p.parsePrintStmt()
	case token.VAR:
		return p.parseVarDecl()
	case token.FUN:
		return p.parseFunDecl()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IDENT:
		return p.parseIdentLedStmt()
	case token.NUMBER, token.STRING:
		x := p.parseExpr()
		semi := p.expect(token.SEMI)
		return &ast.ExprStmt{X: x, Semi: semi}
	default:
		p.errorExpected(p.val.Pos, "statement")
		panic(errPanicMode)
	}
}

// parsePrintStmt parses `print` `(` Expr `)` `;`.
func (p *parser) parsePrintStmt() *ast.PrintStmt {
	print := p.expect(token.PRINT)
	lparen := p.expect(token.LPAREN)
	x := p.parseExpr()
	rparen := p.expect(token.RPAREN)
	semi := p.expect(token.SEMI)
	return &ast.PrintStmt{Print: print, Lparen: lparen, X: x, Rparen: rparen, Semi: semi}
}

// parseVarDecl parses `var` Ident (`=` Expr)? `;`.
func (p *parser) parseVarDecl() *ast.VarDecl {
	kw := p.expect(token.VAR)
	name := p.parseIdent()

	decl := &ast.VarDecl{Var: kw, Name: name}
	if p.tok == token.EQ {
		decl.Assign = p.expect(token.EQ)
		decl.Value = p.parseExpr()
	}
	decl.Semi = p.expect(token.SEMI)
	return decl
}

// parseFunDecl parses `fun` Ident `(` Params `)` `{` Statement* `}`.
func (p *parser) parseFunDecl() *ast.FunDecl {
	kw := p.expect(token.FUN)
	name := p.parseIdent()
	lparen := p.expect(token.LPAREN)

	var params []*ast.IdentExpr
	for p.tok != token.RPAREN {
		params = append(params, p.parseIdent())
		if p.tok != token.COMMA {
			break
		}
		p.advance() // consume comma, allows trailing comma
	}
	rparen := p.expect(token.RPAREN)
	lbrace := p.expect(token.LBRACE)

	var body []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if stmt := p.parseStatementRecover(); stmt != nil {
			body = append(body, stmt)
		}
	}
	rbrace := p.expect(token.RBRACE)

	return &ast.FunDecl{
		Fun: kw, Name: name, Lparen: lparen, Params: params,
		Rparen: rparen, Lbrace: lbrace, Body: body, Rbrace: rbrace,
	}
}

// parseReturnStmt parses `return` Expr? `;`.
func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	kw := p.expect(token.RETURN)

	ret := &ast.ReturnStmt{Return: kw}
	if p.tok != token.SEMI {
		ret.X = p.parseExpr()
	}
	ret.Semi = p.expect(token.SEMI)
	return ret
}

// parseIdentLedStmt parses either an AssignStmt (Ident `=` Expr `;`) or an
// ExprStmt starting with an identifier (e.g. a call expression).
func (p *parser) parseIdentLedStmt() ast.Stmt {
	x := p.parseExpr()
	if p.tok == token.EQ {
		ident, ok := x.(*ast.IdentExpr)
		if !ok {
			start, _ := x.Span()
			p.error(start, "left-hand side of assignment must be an identifier")
			panic(errPanicMode)
		}
		assign := p.expect(token.EQ)
		right := p.parseExpr()
		semi := p.expect(token.SEMI)
		return &ast.AssignStmt{Left: ident, Assign: assign, Right: right, Semi: semi}
	}
	semi := p.expect(token.SEMI)
	return &ast.ExprStmt{X: x, Semi: semi}
}

func (p *parser) parseIdent() *ast.IdentExpr {
	pos := p.val.Pos
	name := p.val.Str
	p.expect(token.IDENT)
	return &ast.IdentExpr{NamePos: pos, Name: name}
}
