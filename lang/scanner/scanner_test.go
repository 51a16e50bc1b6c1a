package scanner_test

import (
	"testing"

	"github.com/corvidlang/corvid/lang/scanner"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]token.Token, []token.Value) {
	t.Helper()
	fset := token.NewFileSet()
	f := fset.AddFile("test.cor", -1, len(src))
	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(f, []byte(src), errs.Add)

	var toks []token.Token
	var vals []token.Value
	for {
		var v token.Value
		tok := s.Scan(&v)
		toks = append(toks, tok)
		vals = append(vals, v)
		if tok == token.EOF {
			break
		}
	}
	require.Empty(t, errs, "unexpected scan errors: %v", errs)
	return toks, vals
}

func TestScanPunctuation(t *testing.T) {
	toks, _ := scanAll(t, "+-*/=;,(){}")
	require.Equal(t, []token.Token{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EQ,
		token.SEMI, token.COMMA, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RBRACE, token.EOF,
	}, toks)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, vals := scanAll(t, "var fun print foo bar_1")
	require.Equal(t, []token.Token{
		token.VAR, token.FUN, token.PRINT, token.IDENT, token.IDENT, token.EOF,
	}, toks)
	require.Equal(t, "foo", vals[3].Str)
	require.Equal(t, "bar_1", vals[4].Str)
}

func TestScanNumber(t *testing.T) {
	toks, vals := scanAll(t, "42 007")
	require.Equal(t, []token.Token{token.NUMBER, token.NUMBER, token.EOF}, toks)
	require.Equal(t, float64(42), vals[0].Num)
	require.Equal(t, float64(7), vals[1].Num)
}

func TestScanString(t *testing.T) {
	toks, vals := scanAll(t, `"hello world"`)
	require.Equal(t, []token.Token{token.STRING, token.EOF}, toks)
	require.Equal(t, "hello world", vals[0].Str)
}

func TestScanWhitespaceIsSkipped(t *testing.T) {
	toks, _ := scanAll(t, "  \t\n var \n  ")
	require.Equal(t, []token.Token{token.VAR, token.EOF}, toks)
}

func TestScanIllegalCharacter(t *testing.T) {
	fset := token.NewFileSet()
	f := fset.AddFile("test.cor", -1, 1)
	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(f, []byte("@"), errs.Add)
	var v token.Value
	tok := s.Scan(&v)
	require.Equal(t, token.ILLEGAL, tok)
	require.NotEmpty(t, errs)
}

func TestScanUnterminatedString(t *testing.T) {
	fset := token.NewFileSet()
	f := fset.AddFile("test.cor", -1, 6)
	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(f, []byte(`"abc`), errs.Add)
	var v token.Value
	tok := s.Scan(&v)
	require.Equal(t, token.STRING, tok)
	require.NotEmpty(t, errs)
}
