package machine_test

import (
	"strings"
	"testing"

	"github.com/corvidlang/corvid/lang/compiler"
	"github.com/corvidlang/corvid/lang/machine"
	"github.com/corvidlang/corvid/lang/parser"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/stretchr/testify/require"
)

// collectSink records print output and compile errors, and counts how
// many times a function was entered, so tests can assert on both the
// program's visible behavior and the tracing seam.
type collectSink struct {
	prints  []string
	errs    []string
	entered []string
}

func (s *collectSink) ReportCompileError(pos token.Position, msg string) {
	s.errs = append(s.errs, msg)
}
func (s *collectSink) EnterFunction(name string) { s.entered = append(s.entered, name) }
func (s *collectSink) Print(v machine.Value)     { s.prints = append(s.prints, v.String()) }

func run(t *testing.T, src string) (*collectSink, error) {
	t.Helper()
	fset := token.NewFileSet()
	ch, perr := parser.ParseChunk(fset, "test.cor", []byte(src))
	require.NoError(t, perr)

	sink := &collectSink{}
	fn, ok := compiler.Compile(sink, fset.File(ch.EOF), ch)
	require.True(t, ok, "unexpected compile errors: %v", sink.errs)

	m := machine.NewMachine(sink, machine.Config{})
	err := m.Run(fn)
	return sink, err
}

func TestPrintString(t *testing.T) {
	sink, err := run(t, `print("foobar");`)
	require.NoError(t, err)
	require.Equal(t, []string{"foobar"}, sink.prints)
}

func TestPrintArithmeticWholeNumberHasNoTrailingZero(t *testing.T) {
	sink, err := run(t, `print(1 - 2 * 3);`)
	require.NoError(t, err)
	require.Equal(t, []string{"-5"}, sink.prints)
}

func TestCallWithArgument(t *testing.T) {
	sink, err := run(t, `fun greet(name) { print("Hello"); print(name); } greet("John Doe");`)
	require.NoError(t, err)
	require.Equal(t, []string{"Hello", "John Doe"}, sink.prints)
}

func TestLocalReassignment(t *testing.T) {
	sink, err := run(t, `fun foo() { var v = 100; print(v); v = "foo"; print(v); } foo();`)
	require.NoError(t, err)
	require.Equal(t, []string{"100", "foo"}, sink.prints)
}

func TestSiblingClosuresShareUpvalue(t *testing.T) {
	src := `
fun main() {
  var slot;
  fun foo() { print(slot); }
  fun bar() { print(slot); }
  print(slot); slot = 1; foo(); bar();
  slot = 2; foo(); bar();
} main();`
	sink, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"nil", "1", "1", "2", "2"}, sink.prints)
}

func TestClosureEscapingItsHomeFrame(t *testing.T) {
	src := `
fun foo() { var local = 100; fun bar() { return local + 200; } local = 400; return bar; }
var cls = foo(); print(cls());`
	sink, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"600"}, sink.prints)
}

func TestNestedFunctionsOfTheSameNameDoNotCollide(t *testing.T) {
	// Each nested "helper" must bind as a local of its own enclosing
	// function, not as a shared global, or the second declaration would
	// clobber the first before it's ever called.
	src := `
fun a() { fun helper() { print("a"); } helper(); }
fun b() { fun helper() { print("b"); } helper(); }
a(); b();`
	sink, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, sink.prints)
}

func TestUndefinedGlobalIsFatal(t *testing.T) {
	_, err := run(t, `print(undefined);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "undefined")
}

func TestArithmeticOnNonNumberIsFatal(t *testing.T) {
	_, err := run(t, `print("a" + 1);`)
	require.Error(t, err)
	var rerr *machine.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestCallingNonFunctionIsFatal(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
}

func TestEnterFunctionTracesEveryCall(t *testing.T) {
	sink, err := run(t, `fun f() {} f(); f(); f();`)
	require.NoError(t, err)
	require.Equal(t, []string{"test.cor", "f", "f", "f"}, sink.entered)
}

func TestMaxStepsAborts(t *testing.T) {
	fset := token.NewFileSet()
	ch, perr := parser.ParseChunk(fset, "test.cor", []byte(`
fun loop() { print(1); loop(); }
loop();`))
	require.NoError(t, perr)

	sink := &collectSink{}
	fn, ok := compiler.Compile(sink, fset.File(ch.EOF), ch)
	require.True(t, ok)

	m := machine.NewMachine(sink, machine.Config{MaxSteps: 50})
	err := m.Run(fn)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max steps")
}

func TestStackOverflowIsFatal(t *testing.T) {
	fset := token.NewFileSet()
	ch, perr := parser.ParseChunk(fset, "test.cor", []byte(`
fun loop() { loop(); }
loop();`))
	require.NoError(t, perr)

	sink := &collectSink{}
	fn, ok := compiler.Compile(sink, fset.File(ch.EOF), ch)
	require.True(t, ok)

	m := machine.NewMachine(sink, machine.Config{StackSize: 64})
	err := m.Run(fn)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "stack overflow"))
}
