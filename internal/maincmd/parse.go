package maincmd

import (
	"context"
	"fmt"

	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/parser"
	"github.com/corvidlang/corvid/lang/scanner"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, token.PosLong, "", args...)
}

// ParseFiles runs the scanner and parser over files and pretty-prints the
// resulting ASTs to stdio.Stdout, one chunk at a time. A batched parse
// error, if any, is reported to stdio.Stderr.
func ParseFiles(stdio mainer.Stdio, posMode token.PosMode, nodeFmt string, files ...string) error {
	printer := ast.Printer{
		Output:  stdio.Stdout,
		Pos:     posMode,
		NodeFmt: nodeFmt,
	}
	fs, chunks, err := parser.ParseFiles(files...)
	for _, ch := range chunks {
		start, _ := ch.Span()
		file := fs.File(start)
		if perr := printer.Print(ch, file); perr != nil {
			fmt.Fprintln(stdio.Stderr, perr)
			return perr
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
