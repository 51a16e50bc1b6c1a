package maincmd

import (
	"context"
	"fmt"

	"github.com/corvidlang/corvid/lang/compiler"
	"github.com/corvidlang/corvid/lang/machine"
	"github.com/corvidlang/corvid/lang/parser"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/mna/mainer"
)

// runSink wires the VM's side effects to a mainer.Stdio: print statements
// go to stdout, compile errors to stderr, and function entry is silently
// dropped (the CLI has no tracing flag yet).
type runSink struct {
	stdio  mainer.Stdio
	failed bool
}

func (s *runSink) ReportCompileError(pos token.Position, msg string) {
	s.failed = true
	fmt.Fprintf(s.stdio.Stderr, "%s: %s\n", pos, msg)
}

func (s *runSink) EnterFunction(name string) {}

func (s *runSink) Print(v machine.Value) {
	fmt.Fprintln(s.stdio.Stdout, v.String())
}

func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	return RunFiles(stdio, machine.Config{MaxSteps: c.MaxSteps, StackSize: c.StackSize}, args...)
}

// RunFiles parses, compiles and executes files in turn, each against its
// own fresh machine and global environment.
func RunFiles(stdio mainer.Stdio, cfg machine.Config, files ...string) error {
	fset, chunks, err := parser.ParseFiles(files...)
	if err != nil {
		printError(stdio, err)
		return err
	}

	sink := &runSink{stdio: stdio}
	for _, ch := range chunks {
		start, _ := ch.Span()
		file := fset.File(start)
		fn, ok := compiler.Compile(sink, file, ch)
		if !ok {
			continue
		}
		m := machine.NewMachine(sink, cfg)
		if rerr := m.Run(fn); rerr != nil {
			fmt.Fprintln(stdio.Stderr, rerr)
			return rerr
		}
	}
	if sink.failed {
		return fmt.Errorf("run: one or more compile errors occurred")
	}
	return nil
}
