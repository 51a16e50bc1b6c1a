// Package ast defines the types that represent the abstract syntax tree of
// a parsed chunk: a flat sequence of statements, each either a declaration
// or an expression built from a small precedence ladder.
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corvidlang/corvid/lang/token"
)

// Node represents any node in the AST.
type Node interface {
	// Every Node implements the fmt.Formatter interface so it can print a
	// description of itself. The only supported verbs are 'v' and 's'. The
	// '#' flag prints count information about children nodes. A width sets
	// the number of runes to print for the node description - it is padded
	// on the left by default, on the right if the '-' flag is set, and not
	// padded at all (only truncated if too long) if '+' is set.
	fmt.Formatter

	// Span reports the start and end position of the node.
	Span() (start, end token.Pos)

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents an expression in the AST.
type Expr interface {
	Node
	expr()
}

// Stmt represents a statement in the AST.
type Stmt interface {
	Node
	stmt()
}

// Chunk is the root of the AST: the full sequence of statements parsed from
// a source file.
type Chunk struct {
	// Name is the filename the chunk was parsed from, may be empty.
	Name  string
	Stmts []Stmt
	EOF   token.Pos // position of the EOF marker, used for empty chunks
}

func (n *Chunk) Format(f fmt.State, verb rune) {
	lbl := "chunk"
	if n.Name != "" {
		lbl += " " + n.Name
	}
	format(f, verb, n, lbl, map[string]int{"stmts": len(n.Stmts)})
}

func (n *Chunk) Span() (start, end token.Pos) {
	if len(n.Stmts) > 0 {
		start, _ = n.Stmts[0].Span()
		_, end = n.Stmts[len(n.Stmts)-1].Span()
		return start, end
	}
	return n.EOF, n.EOF
}

func (n *Chunk) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

// format renders label as the description of n, honoring the width and flag
// conventions documented on the Node interface.
func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		if len(runes) >= w {
			runes = runes[:w]
		} else if minus {
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		} else if !plus {
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
