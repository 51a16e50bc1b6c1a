package compiler_test

import (
	"strings"
	"testing"

	"github.com/corvidlang/corvid/lang/compiler"
	"github.com/stretchr/testify/require"
)

func TestDisassembleHeader(t *testing.T) {
	fn, _ := compile(t, `print("hi");`)
	var buf strings.Builder
	require.NoError(t, compiler.Disassemble(&buf, fn))
	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "==== test.cor ====", lines[0])
}

func TestDisassembleIsDeterministic(t *testing.T) {
	fn, _ := compile(t, `print(1 - 2 * 3);`)
	var a, b strings.Builder
	require.NoError(t, compiler.Disassemble(&a, fn))
	require.NoError(t, compiler.Disassemble(&b, fn))
	require.Equal(t, a.String(), b.String())
}

func TestDisassembleClosureUpvalueLines(t *testing.T) {
	fn, _ := compile(t, `
fun main() {
  var slot;
  fun foo() { print(slot); }
  foo();
}`)
	var buf strings.Builder
	require.NoError(t, compiler.Disassemble(&buf, fn))
	out := buf.String()
	require.Contains(t, out, "CLOSURE")
	require.Contains(t, out, "upvalues")
	require.Contains(t, out, "(local)")
}

func TestDisassembleNestedFunctionAppearsAfterParent(t *testing.T) {
	fn, _ := compile(t, `fun greet(name) { print(name); } greet("x");`)
	var buf strings.Builder
	require.NoError(t, compiler.Disassemble(&buf, fn))
	out := buf.String()
	topIdx := strings.Index(out, "==== test.cor ====")
	nestedIdx := strings.Index(out, "==== greet ====")
	require.True(t, topIdx >= 0 && nestedIdx > topIdx)
}

func TestDisassembleConstantDisplay(t *testing.T) {
	fn, _ := compile(t, `print(1 - 2 * 3);`)
	var buf strings.Builder
	require.NoError(t, compiler.Disassemble(&buf, fn))
	require.Contains(t, buf.String(), "1")
	require.Contains(t, buf.String(), "2")
	require.Contains(t, buf.String(), "3")
}

func TestDisassembleGlobalShowsName(t *testing.T) {
	fn, _ := compile(t, `var x = 1; print(x);`)
	var buf strings.Builder
	require.NoError(t, compiler.Disassemble(&buf, fn))
	require.Contains(t, buf.String(), `"x"`)
}
