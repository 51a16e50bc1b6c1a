package machine

// Bool is the type of a boolean value. The source language has no literal
// syntax for booleans (no comparisons or control flow in the core surface);
// this type exists so the value model is complete for future extension.
type Bool bool

var _ Value = Bool(false)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Bool) Type() string { return "bool" }
