package parser_test

import (
	"testing"

	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/parser"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Chunk {
	t.Helper()
	fset := token.NewFileSet()
	ch, err := parser.ParseChunk(fset, "test.cor", []byte(src))
	require.NoError(t, err)
	return ch
}

func TestParsePrintStmt(t *testing.T) {
	ch := parse(t, `print("hello");`)
	require.Len(t, ch.Stmts, 1)
	st, ok := ch.Stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	lit, ok := st.X.(*ast.StringExpr)
	require.True(t, ok)
	require.Equal(t, "hello", lit.Value)
}

func TestParseVarDecl(t *testing.T) {
	ch := parse(t, `var x = 1 + 2;`)
	require.Len(t, ch.Stmts, 1)
	decl, ok := ch.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name.Name)
	bin, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, bin.Op)
}

func TestParseVarDeclNoInit(t *testing.T) {
	ch := parse(t, `var x;`)
	decl := ch.Stmts[0].(*ast.VarDecl)
	require.Nil(t, decl.Value)
}

func TestParseFunDecl(t *testing.T) {
	ch := parse(t, `fun add(a, b) { print(a + b); }`)
	fn, ok := ch.Stmts[0].(*ast.FunDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name)
	require.Equal(t, "b", fn.Params[1].Name)
	require.Len(t, fn.Body, 1)
}

func TestParseReturnStmtWithValue(t *testing.T) {
	ch := parse(t, `fun f() { return 1 + 2; }`)
	fn := ch.Stmts[0].(*ast.FunDecl)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	require.NotNil(t, ret.X)
}

func TestParseReturnStmtNoValue(t *testing.T) {
	ch := parse(t, `fun f() { return; }`)
	fn := ch.Stmts[0].(*ast.FunDecl)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	require.Nil(t, ret.X)
}

func TestParseAssignStmt(t *testing.T) {
	ch := parse(t, `x = 3;`)
	asn, ok := ch.Stmts[0].(*ast.AssignStmt)
	require.True(t, ok)
	require.Equal(t, "x", asn.Left.Name)
}

func TestParseExprStmtCall(t *testing.T) {
	ch := parse(t, `greet("John");`)
	st, ok := ch.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := st.X.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
}

func TestParsePrecedence(t *testing.T) {
	ch := parse(t, `print(1 - 2 * 3);`)
	st := ch.Stmts[0].(*ast.PrintStmt)
	bin := st.X.(*ast.BinaryExpr)
	require.Equal(t, token.MINUS, bin.Op)
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.STAR, rhs.Op)
}

func TestParseErrorsReported(t *testing.T) {
	fset := token.NewFileSet()
	_, err := parser.ParseChunk(fset, "test.cor", []byte(`var = 1;`))
	require.Error(t, err)
}
