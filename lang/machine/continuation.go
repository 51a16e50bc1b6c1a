package machine

// Continuation is the reified state of a suspended call: the caller's
// closure, its instruction pointer (already advanced past CALL and its
// operand byte), its frame pointer, and the head of its open-upvalue list
// at the moment of the call. CALL stores one of these by value at the
// callee's slot 0; RETURN reads it back to resume the caller.
//
// Storing it by value (not by pointer into shared state) is what gives
// each CALL an independent snapshot: a later CALL from the same closure
// cannot alias or overwrite an already-reified Continuation sitting lower
// on the stack.
type Continuation struct {
	closure      *Closure
	ip           int
	fp           int
	openUpvalues *Upvalue
}

var _ Value = Continuation{}

func (Continuation) String() string { return "<continuation>" }
func (Continuation) Type() string   { return "continuation" }

// haltSentinel occupies slot 0 of the top-level call, where a Continuation
// would sit in any other frame. The top-level call has no caller to
// resume, and the compiler never emits a RETURN for the top-level chunk
// (only function bodies get the implicit NIL;RETURN epilogue), so this
// value is never read back.
type haltSentinel struct{}

var _ Value = haltSentinel{}

func (haltSentinel) String() string { return "<halt>" }
func (haltSentinel) Type() string   { return "sentinel" }
