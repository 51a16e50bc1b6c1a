// Package parser implements the recursive-descent parser that transforms
// source code into an abstract syntax tree.
package parser

import (
	"errors"
	"os"

	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/scanner"
	"github.com/corvidlang/corvid/lang/token"
)

// ParseFiles parses the given source files and returns the fileset along
// with the ASTs and any error encountered. The error, if non-nil, is
// guaranteed to be a scanner.ErrorList.
func ParseFiles(files ...string) (*token.FileSet, []*ast.Chunk, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	var p parser
	res := make([]*ast.Chunk, 0, len(files))
	fs := token.NewFileSet()

	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			p.errors.Add(token.Position{Filename: file}, err.Error())
			continue
		}

		p.init(fs, file, b)
		ch := p.parseChunk()
		ch.Name = file
		res = append(res, ch)
	}
	p.errors.Sort()
	return fs, res, p.errors.Err()
}

// ParseChunk parses a single chunk from src and returns the AST and any
// error encountered. The chunk is added to fset for position reporting
// under the given filename. The error, if non-nil, is guaranteed to be a
// scanner.ErrorList.
func ParseChunk(fset *token.FileSet, filename string, src []byte) (*ast.Chunk, error) {
	var p parser
	p.init(fset, filename, src)
	ch := p.parseChunk()
	ch.Name = filename
	return ch, p.errors.Err()
}

// parser parses a single source file and generates an AST.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList
	file    *token.File

	// current token
	tok token.Token
	val token.Value
}

func (p *parser) init(fset *token.FileSet, filename string, src []byte) {
	p.file = fset.AddFile(filename, -1, len(src))
	p.scanner.Init(p.file, src, p.errors.Add)
	p.advance()
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// errPanicMode is recovered at the statement level: a malformed statement is
// skipped up to the next `;` so that parsing can report more than one error
// per file.
var errPanicMode = errors.New("panic")

// expect returns the position of the current token and consumes it if it
// matches tok, otherwise it reports an error and panics with errPanicMode.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.val.Pos
	if p.tok != tok {
		p.errorExpected(pos, tok.String())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(p.file.Position(pos), msg)
}

func (p *parser) errorExpected(pos token.Pos, want string) {
	msg := "expected " + want
	if pos == p.val.Pos {
		if lit := p.tok.Literal(p.val); lit != "" {
			msg += ", found " + lit
		} else {
			msg += ", found " + p.tok.String()
		}
	}
	p.error(pos, msg)
}

// syncToSemi skips tokens until past the next `;` or until EOF, to recover
// from a statement-level parse error.
func (p *parser) syncToSemi() {
	for p.tok != token.SEMI && p.tok != token.EOF {
		p.advance()
	}
	if p.tok == token.SEMI {
		p.advance()
	}
}
