package machine

import (
	"fmt"

	"github.com/corvidlang/corvid/lang/compiler"
)

// binary implements ADD/SUB/MUL/DIV: pop b, pop a, push op(a, b). Both
// operands must be numbers; anything else is a fatal runtime type error.
func (m *Machine) binary(op compiler.Opcode) error {
	b, err := m.popv()
	if err != nil {
		return err
	}
	a, err := m.popv()
	if err != nil {
		return err
	}

	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		return fmt.Errorf("arithmetic on non-number operands (%s, %s)", a.Type(), b.Type())
	}

	var z Number
	switch op {
	case compiler.ADD:
		z = an + bn
	case compiler.SUB:
		z = an - bn
	case compiler.MUL:
		z = an * bn
	case compiler.DIV:
		z = an / bn
	default:
		panic("machine: binary called with non-arithmetic opcode")
	}
	return m.push(z)
}
