package machine

import (
	"fmt"

	"github.com/corvidlang/corvid/lang/compiler"
)

// Function is the runtime wrapper around a compiled function: immutable and
// shareable. CLOSURE binds it to its upvalues in a Closure; CALL also
// accepts a bare Function and promotes it to a trivial Closure with no
// upvalues.
type Function struct {
	Compiled *compiler.Function
}

var _ Value = (*Function)(nil)

func (fn *Function) String() string { return fmt.Sprintf("<fn %s>", fn.Name()) }
func (fn *Function) Type() string   { return "function" }

func (fn *Function) Name() string {
	if fn.Compiled.Name == "" {
		return "anonymous"
	}
	return fn.Compiled.Name
}
