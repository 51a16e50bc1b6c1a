package machine

import "fmt"

// Closure is a Function bound to a vector of live Upvalue references, one
// per upvalue the function's compiled form expects.
type Closure struct {
	Fn       *Function
	Upvalues []*Upvalue
}

var _ Value = (*Closure)(nil)

func (c *Closure) String() string { return fmt.Sprintf("<fn %s>", c.Fn.Name()) }
func (c *Closure) Type() string   { return "function" }
