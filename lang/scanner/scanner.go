// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scanner tokenizes source files for the parser to consume. Error
// reporting reuses the standard library's go/scanner Error/ErrorList types,
// which already provide position-sorted, deduplicated, nicely formatted
// batches of lexical errors, rather than inventing a parallel one.
package scanner

import (
	"go/scanner"
	"os"

	"github.com/corvidlang/corvid/lang/token"
)

type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// PrintError prints err (an Error, an ErrorList, or any other error) to w,
// one error per line, in list order if it is an ErrorList.
var PrintError = scanner.PrintError

// TokenAndValue combines the token kind with its position/literal payload.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles tokenizes the given source files and returns the tokens grouped
// by file, along with a batched error (nil if every file scanned cleanly).
func ScanFiles(files ...string) (*token.FileSet, [][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	var el ErrorList
	fset := token.NewFileSet()
	tokensByFile := make([][]TokenAndValue, len(files))
	for i, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			el.Add(token.Position{Filename: name}, err.Error())
			continue
		}

		f := fset.AddFile(name, -1, len(b))
		var s Scanner
		s.Init(f, b, el.Add)
		for {
			var val token.Value
			tok := s.Scan(&val)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{Token: tok, Value: val})
			if tok == token.EOF {
				break
			}
		}
	}
	el.Sort()
	return fset, tokensByFile, el.Err()
}

// Scanner tokenizes a single source file.
type Scanner struct {
	file *token.File
	src  []byte
	err  func(pos token.Position, msg string)

	offset int // offset of the byte about to be consumed next (s.ch already read)
	ch     rune
}

const eof = -1

// Init prepares s to scan src, registered as f in its FileSet. errh, if
// non-nil, is called for every lexical error encountered; scanning does not
// stop on error, it resynchronizes at the next token boundary.
func (s *Scanner) Init(f *token.File, src []byte, errh func(pos token.Position, msg string)) {
	s.file = f
	s.src = src
	s.err = errh
	s.offset = 0
	s.next()
}

// next advances s.ch to the byte at s.offset and increments s.offset. At the
// end of src, s.ch is eof and s.offset stays at len(src)+1, so that s.offset-1
// is always the offset of s.ch.
func (s *Scanner) next() {
	if s.offset < len(s.src) {
		if s.src[s.offset] == '\n' {
			s.file.AddLine(s.offset + 1)
		}
		s.ch = rune(s.src[s.offset])
		s.offset++
	} else {
		s.ch = eof
		s.offset = len(s.src) + 1
	}
}

func (s *Scanner) error(pos token.Pos, msg string) {
	if s.err != nil {
		s.err(s.file.Position(pos), msg)
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Scan returns the next token and fills val with its position and literal
// payload (for IDENT, NUMBER and STRING tokens).
func (s *Scanner) Scan(val *token.Value) token.Token {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n' {
		s.next()
	}

	pos := s.file.Pos(s.offset - 1)
	*val = token.Value{Pos: pos}

	switch {
	case s.ch == eof:
		return token.EOF
	case isLetter(s.ch):
		return s.scanIdent(val)
	case isDigit(s.ch):
		return s.scanNumber(val)
	case s.ch == '"':
		return s.scanString(val, pos)
	}

	ch := s.ch
	s.next()
	switch ch {
	case '+':
		return token.PLUS
	case '-':
		return token.MINUS
	case '*':
		return token.STAR
	case '/':
		return token.SLASH
	case '=':
		return token.EQ
	case ';':
		return token.SEMI
	case ',':
		return token.COMMA
	case '(':
		return token.LPAREN
	case ')':
		return token.RPAREN
	case '{':
		return token.LBRACE
	case '}':
		return token.RBRACE
	default:
		s.error(pos, "illegal character "+string(ch))
		return token.ILLEGAL
	}
}

func (s *Scanner) scanIdent(val *token.Value) token.Token {
	start := s.offset - 1
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	name := string(s.src[start : s.offset-1])
	val.Str = name
	if tok, ok := token.Keywords[name]; ok {
		return tok
	}
	return token.IDENT
}
