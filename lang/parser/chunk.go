package parser

import (
	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/token"
)

// parseChunk parses a sequence of statements until EOF, recovering from
// statement-level errors so that a single file can report multiple parse
// errors in one pass.
func (p *parser) parseChunk() *ast.Chunk {
	ch := &ast.Chunk{}
	for p.tok != token.EOF {
		stmt := p.parseStatementRecover()
		if stmt != nil {
			ch.Stmts = append(ch.Stmts, stmt)
		}
	}
	ch.EOF = p.val.Pos
	return ch
}

// parseStatementRecover parses a single statement, recovering from a panic
// triggered by expect() and resynchronizing at the next `;`.
func (p *parser) parseStatementRecover() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.syncToSemi()
			stmt = nil
		}
	}()
	return p.parseStatement()
}
