package machine

// Upvalue is a captured variable shared between a closure and the stack
// slot (or enclosing upvalue chain) it was captured from.
//
// While open, pointer aliases a live stack slot: the same memory the
// enclosing frame reads and writes through GET_LOCAL/SET_LOCAL. When
// closed, the value has been moved into the upvalue's own closed field and
// pointer aliases that field instead, so the closure keeps observing
// writes that happened before closing and is immune to the stack slot
// being reused afterward.
type Upvalue struct {
	pointer *Value
	closed  Value
	next    *Upvalue // link in the continuation's open-upvalue list; nil once closed

	stackIndex int // the stack slot this upvalue aliases while open
}

var _ Value = (*Upvalue)(nil)

func (u *Upvalue) String() string { return "<upvalue>" }
func (u *Upvalue) Type() string   { return "upvalue" }

// Get dereferences the upvalue's current storage.
func (u *Upvalue) Get() Value { return *u.pointer }

// Set writes through the upvalue's current storage.
func (u *Upvalue) Set(v Value) { *u.pointer = v }

// captureOpenUpvalue returns the open upvalue in m's list that aliases
// stackIndex, creating and splicing in a new one if none exists yet. The
// list stays sorted highest-stack-index first with no duplicates.
func (m *Machine) captureOpenUpvalue(stackIndex int) *Upvalue {
	var prev *Upvalue
	cur := m.openUpvalues
	for cur != nil && cur.stackIndex > stackIndex {
		prev = cur
		cur = cur.next
	}
	if cur != nil && cur.stackIndex == stackIndex {
		return cur
	}

	u := &Upvalue{pointer: &m.Stack[stackIndex], stackIndex: stackIndex, next: cur}
	if prev == nil {
		m.openUpvalues = u
	} else {
		prev.next = u
	}
	return u
}

// closeUpvaluesAbove closes every open upvalue referencing a stack slot at
// or above newSP, moving each captured value into the upvalue itself, then
// truncates the stack to newSP.
func (m *Machine) closeUpvaluesAbove(newSP int) {
	for m.openUpvalues != nil && m.openUpvalues.stackIndex >= newSP {
		u := m.openUpvalues
		u.closed = *u.pointer
		u.pointer = &u.closed
		m.openUpvalues = u.next
		u.next = nil
	}
	m.SP = newSP
}
