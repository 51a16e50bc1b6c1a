// Package machine implements the runtime representation of values and the
// stack-based virtual machine that executes compiled chunks. Unlike a
// tree-walking evaluator, the VM never recurses on the Go call stack: a
// CALL instruction swaps in the callee's closure/ip/fp in place and a
// RETURN swaps the caller's back in, so arbitrarily deep script-level
// recursion costs one flat Go loop iteration per opcode, not one Go stack
// frame per call.
package machine

import (
	"fmt"

	"github.com/corvidlang/corvid/lang/compiler"
)

// StackSize is the default fixed capacity of the value stack when Config
// does not override it. GET_LOCAL/SET_LOCAL and open upvalues alias stack
// slots by address, so whatever size is chosen, the backing slice is
// allocated once and never regrown.
const StackSize = 1024

// Config tunes the resource ceilings the spec leaves implementation
// defined: the fixed stack size and an optional runaway-recursion guard.
// Both default to "no limit beyond StackSize" when left zero.
type Config struct {
	// StackSize overrides the default fixed stack capacity. <= 0 means
	// StackSize (1024).
	StackSize int

	// MaxSteps bounds the number of opcodes a single Run executes before
	// the machine aborts with a runtime error. 0 means unbounded. This is
	// a safety valve against runaway script-level recursion, not a
	// language feature: the source surface has no loops, so the only way
	// to run "forever" is deep or infinite function recursion.
	MaxSteps uint64
}

func (c Config) stackSize() int {
	if c.StackSize > 0 {
		return c.StackSize
	}
	return StackSize
}

// Sink receives the three side effects the machine depends on, per the
// spec's "side-effect sink" collaborator: compile error reporting (shared
// with the compiler), tracing when a function is entered, and the
// `print` builtin. The VM never writes to os.Stdout/os.Stderr directly.
type Sink interface {
	compiler.Sink
	EnterFunction(name string)
	Print(v Value)
}

// RuntimeError reports a fatal error raised while executing a chunk,
// together with the source line that was active when it was raised.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Machine is the virtual machine's entire mutable state: a single active
// continuation (closure, instruction pointer, frame pointer, open-upvalue
// list head) plus the shared value stack and global environment.
type Machine struct {
	Stack []Value
	SP    int
	FP    int

	closure      *Closure
	ip           int
	openUpvalues *Upvalue

	globals *globals
	sink    Sink

	steps, maxSteps uint64
}

// NewMachine returns a machine ready to Run compiled functions, its
// global environment empty.
func NewMachine(sink Sink, cfg Config) *Machine {
	return &Machine{
		Stack:    make([]Value, cfg.stackSize()),
		globals:  newGlobals(),
		sink:     sink,
		maxSteps: cfg.MaxSteps,
	}
}

// Run executes fn — normally the top-level Function returned by
// compiler.Compile — to completion.
func (m *Machine) Run(fn *compiler.Function) error {
	m.closure = &Closure{Fn: &Function{Compiled: fn}}
	m.ip = 0
	m.FP = 0
	m.SP = 1
	m.Stack[0] = haltSentinel{}
	m.openUpvalues = nil
	m.sink.EnterFunction(fn.Name)
	return m.dispatch()
}

// dispatch is the single flat instruction loop described in §4.3: it
// never recurses, whether the active continuation is the top-level chunk
// or ten frames deep in script-level function calls.
func (m *Machine) dispatch() error {
	for {
		chunk := m.closure.Fn.Compiled.Chunk
		if m.ip >= len(chunk.Code) {
			return nil
		}

		if m.maxSteps > 0 {
			m.steps++
			if m.steps > m.maxSteps {
				return &RuntimeError{Line: chunk.Lines[m.ip], Msg: "exceeded max steps"}
			}
		}

		line := chunk.Lines[m.ip]
		op := compiler.Opcode(chunk.Code[m.ip])
		m.ip++

		var err error
		switch op {
		case compiler.NIL:
			err = m.push(Nil)
		case compiler.TRUE:
			err = m.push(Bool(true))
		case compiler.FALSE:
			err = m.push(Bool(false))
		case compiler.CONSTANT:
			k := m.readByte(chunk)
			err = m.push(constantValue(chunk.Constants[k]))
		case compiler.POP:
			err = m.drop()
		case compiler.PRINT:
			v, perr := m.popv()
			if perr != nil {
				err = perr
				break
			}
			m.sink.Print(v)
		case compiler.ADD, compiler.SUB, compiler.MUL, compiler.DIV:
			err = m.binary(op)
		case compiler.GET_GLOBAL:
			k := m.readByte(chunk)
			err = m.getGlobal(chunk, k)
		case compiler.SET_GLOBAL:
			k := m.readByte(chunk)
			err = m.setGlobal(chunk, k)
		case compiler.GET_LOCAL:
			offset := m.readByte(chunk)
			err = m.push(m.Stack[m.FP+int(offset)])
		case compiler.SET_LOCAL:
			offset := m.readByte(chunk)
			v, perr := m.popv()
			if perr != nil {
				err = perr
				break
			}
			m.Stack[m.FP+int(offset)] = v
		case compiler.GET_UPVALUE:
			idx := m.readByte(chunk)
			err = m.push(m.closure.Upvalues[idx].Get())
		case compiler.SET_UPVALUE:
			idx := m.readByte(chunk)
			v, perr := m.popv()
			if perr != nil {
				err = perr
				break
			}
			m.closure.Upvalues[idx].Set(v)
		case compiler.CALL:
			argc := int(m.readByte(chunk))
			err = m.call(argc)
		case compiler.RETURN:
			err = m.doReturn()
		case compiler.CLOSE_UPVALUE:
			m.closeUpvaluesAbove(m.SP - 1)
		case compiler.CLOSURE:
			err = m.closureOp(chunk)
		default:
			err = fmt.Errorf("unknown opcode %d", op)
		}

		if err != nil {
			return &RuntimeError{Line: line, Msg: err.Error()}
		}
	}
}

func (m *Machine) readByte(ch *compiler.Chunk) byte {
	b := ch.Code[m.ip]
	m.ip++
	return b
}

func (m *Machine) push(v Value) error {
	if m.SP >= len(m.Stack) {
		return fmt.Errorf("stack overflow")
	}
	m.Stack[m.SP] = v
	m.SP++
	return nil
}

func (m *Machine) popv() (Value, error) {
	if m.SP <= m.FP {
		return nil, fmt.Errorf("stack underflow")
	}
	m.SP--
	return m.Stack[m.SP], nil
}

func (m *Machine) drop() error {
	_, err := m.popv()
	return err
}

func (m *Machine) getGlobal(ch *compiler.Chunk, k byte) error {
	name, _ := ch.Constants[k].(string)
	v, ok := m.globals.get(name)
	if !ok {
		return fmt.Errorf("undefined global %q", name)
	}
	return m.push(v)
}

func (m *Machine) setGlobal(ch *compiler.Chunk, k byte) error {
	name, _ := ch.Constants[k].(string)
	v, err := m.popv()
	if err != nil {
		return err
	}
	m.globals.set(name, v)
	return nil
}

// call implements CALL argc: it reifies the current continuation into the
// callee's slot 0, then swaps the active closure/ip/fp to the callee's.
func (m *Machine) call(argc int) error {
	calleeIdx := m.SP - argc - 1
	if calleeIdx < m.FP {
		return fmt.Errorf("stack underflow in call")
	}
	callee := m.Stack[calleeIdx]

	cont := Continuation{closure: m.closure, ip: m.ip, fp: m.FP, openUpvalues: m.openUpvalues}
	m.Stack[calleeIdx] = cont

	var cl *Closure
	switch v := callee.(type) {
	case *Closure:
		cl = v
	case *Function:
		cl = &Closure{Fn: v}
	default:
		return fmt.Errorf("attempt to call non-function value (%s)", callee.Type())
	}

	m.closure = cl
	m.ip = 0
	m.FP = calleeIdx
	m.sink.EnterFunction(cl.Fn.Name())
	return nil
}

// doReturn implements RETURN: close this frame's upvalues, restore the
// caller's continuation, and land the return value at the slot the
// callee used to occupy.
func (m *Machine) doReturn() error {
	retVal, err := m.popv()
	if err != nil {
		return err
	}

	cont, ok := m.Stack[m.FP].(Continuation)
	if !ok {
		return fmt.Errorf("internal error: return frame does not hold a continuation")
	}

	m.closeUpvaluesAbove(m.FP)

	m.closure = cont.closure
	m.ip = cont.ip
	m.FP = cont.fp
	m.openUpvalues = cont.openUpvalues

	return m.push(retVal)
}

// closureOp implements CLOSURE n (is_local,index)×n: pop the Function
// constant pushed just before this instruction, bind it to n live
// upvalues, and push the resulting Closure.
func (m *Machine) closureOp(ch *compiler.Chunk) error {
	n := int(m.readByte(ch))

	fnVal, err := m.popv()
	if err != nil {
		return err
	}
	fn, ok := fnVal.(*Function)
	if !ok {
		return fmt.Errorf("CLOSURE: expected function constant, got %s", fnVal.Type())
	}

	ups := make([]*Upvalue, n)
	for i := 0; i < n; i++ {
		isLocal := m.readByte(ch) != 0
		idx := int(m.readByte(ch))
		if isLocal {
			ups[i] = m.captureOpenUpvalue(m.FP + idx)
		} else {
			ups[i] = m.closure.Upvalues[idx]
		}
	}

	return m.push(&Closure{Fn: fn, Upvalues: ups})
}

// constantValue converts a compiled constant (float64 | string |
// *compiler.Function) into its runtime Value form.
func constantValue(c any) Value {
	switch c := c.(type) {
	case float64:
		return Number(c)
	case string:
		return String(c)
	case *compiler.Function:
		return &Function{Compiled: c}
	default:
		panic(fmt.Sprintf("machine: unexpected constant %T", c))
	}
}
