// Package machine implements the runtime representation of values and the
// stack-based virtual machine that executes compiled chunks.
package machine

// Value is the interface implemented by every value the machine can push on
// its stack, store in a local or upvalue, or bind to a global name.
type Value interface {
	// String returns the canonical display of the value, as printed by the
	// `print` opcode.
	String() string

	// Type returns a short string describing the value's type, used in
	// runtime type error messages.
	Type() string
}
