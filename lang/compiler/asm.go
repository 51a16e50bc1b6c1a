package compiler

import (
	"fmt"
	"io"
	"strconv"
)

// Disassemble writes a textual listing of fn and, recursively, of every
// nested Function found in its constant pool. The format is:
//
//	==== <name> ====
//	<offset> | <line> | <opcode> | <constants>
//
// CLOSURE is multi-line: the header line shows the upvalue count, and each
// upvalue gets its own indented continuation line, "<index> (local|upvalue)".
func Disassemble(w io.Writer, fn *Function) error {
	d := &disasm{w: w}
	return d.function(fn)
}

type disasm struct {
	w   io.Writer
	err error
}

func (d *disasm) function(fn *Function) error {
	d.printf("==== %s ====\n", fn.Name)

	ch := fn.Chunk
	var nested []*Function
	for offset := 0; offset < len(ch.Code); {
		op := Opcode(ch.Code[offset])
		line := ch.Lines[offset]

		switch op {
		case CLOSURE:
			n := int(ch.Code[offset+1])
			d.printf("%04d | %4d | %-12s | %d upvalues\n", offset, line, op, n)
			for i := 0; i < n; i++ {
				isLocal := ch.Code[offset+2+2*i] != 0
				idx := ch.Code[offset+2+2*i+1]
				kind := "upvalue"
				if isLocal {
					kind = "local"
				}
				d.printf("     %d (%s)\n", idx, kind)
			}
			offset += 2 + 2*n
			continue
		default:
			operands := operandBytes(op)
			d.printf("%04d | %4d | %-12s | %s\n", offset, line, op, d.operandText(ch, op, offset+1+operands))
			if fn, ok := constantFunction(ch, op, offset+1+operands); ok {
				nested = append(nested, fn)
			}
			offset += 1 + operands
		}
	}

	for _, nfn := range nested {
		if d.err != nil {
			break
		}
		d.err = Disassemble(d.w, nfn)
	}
	return d.err
}

// constantFunction returns the Function constant just pushed by a CONSTANT
// instruction ending at nextOffset, if any, so it can be disassembled after
// the enclosing function's own listing.
func constantFunction(ch *Chunk, op Opcode, nextOffset int) (*Function, bool) {
	if op != CONSTANT {
		return nil, false
	}
	k := ch.Code[nextOffset-1]
	if int(k) >= len(ch.Constants) {
		return nil, false
	}
	fn, ok := ch.Constants[k].(*Function)
	return fn, ok
}

func (d *disasm) operandText(ch *Chunk, op Opcode, nextOffset int) string {
	n := operandBytes(op)
	if n == 0 {
		return ""
	}
	operand := ch.Code[nextOffset-n]

	switch op {
	case CONSTANT, GET_GLOBAL, SET_GLOBAL:
		if int(operand) < len(ch.Constants) {
			return displayConstant(ch.Constants[operand])
		}
	}
	return strconv.Itoa(int(operand))
}

func displayConstant(c any) string {
	switch c := c.(type) {
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case string:
		return strconv.Quote(c)
	case *Function:
		return "<fn " + c.Name + ">"
	default:
		return fmt.Sprintf("%v", c)
	}
}

func (d *disasm) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}
