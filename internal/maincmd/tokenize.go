package maincmd

import (
	"context"
	"fmt"

	"github.com/corvidlang/corvid/lang/scanner"
	"github.com/corvidlang/corvid/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, token.PosLong, args...)
}

// TokenizeFiles runs the scanner over files and prints one line per token:
// its position, kind, and literal text (if any).
func TokenizeFiles(stdio mainer.Stdio, posMode token.PosMode, files ...string) error {
	fs, toksByFile, err := scanner.ScanFiles(files...)
	for _, toks := range toksByFile {
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s: %s", token.FormatPos(posMode, fs.File(tok.Value.Pos), tok.Value.Pos, true), tok.Token)
			if lit := tok.Token.Literal(tok.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
