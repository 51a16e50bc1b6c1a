package maincmd

import (
	"context"
	"fmt"

	"github.com/corvidlang/corvid/lang/compiler"
	"github.com/corvidlang/corvid/lang/parser"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/mna/mainer"
)

// compileSink reports compile errors to stderr, one line per error.
type compileSink struct {
	stdio  mainer.Stdio
	failed bool
}

func (s *compileSink) ReportCompileError(pos token.Position, msg string) {
	s.failed = true
	fmt.Fprintf(s.stdio.Stderr, "%s: %s\n", pos, msg)
}

func (c *Cmd) Compile(_ context.Context, stdio mainer.Stdio, args []string) error {
	return CompileFiles(stdio, args...)
}

// CompileFiles parses and compiles files, printing the bytecode disassembly
// of each resulting top-level Function (and, recursively, its nested
// functions) to stdio.Stdout.
func CompileFiles(stdio mainer.Stdio, files ...string) error {
	fset, chunks, err := parser.ParseFiles(files...)
	if err != nil {
		printError(stdio, err)
	}

	sink := &compileSink{stdio: stdio}
	for _, ch := range chunks {
		start, _ := ch.Span()
		file := fset.File(start)
		fn, ok := compiler.Compile(sink, file, ch)
		if !ok {
			continue
		}
		if derr := compiler.Disassemble(stdio.Stdout, fn); derr != nil {
			fmt.Fprintln(stdio.Stderr, derr)
			return derr
		}
	}
	if sink.failed {
		return fmt.Errorf("compile: one or more errors occurred")
	}
	return err
}
