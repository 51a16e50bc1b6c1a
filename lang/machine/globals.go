package machine

import "github.com/dolthub/swiss"

// globals is the machine's top-level name environment. It backs
// GET_GLOBAL/SET_GLOBAL the same way the teacher backs its own `Map`
// builtin: a swiss-table hash map gives O(1) amortized lookup under the
// heavy read traffic a script with many top-level bindings generates,
// without requiring any ordering guarantee (the spec explicitly does not
// require insertion order).
type globals struct {
	m *swiss.Map[string, Value]
}

func newGlobals() *globals {
	return &globals{m: swiss.NewMap[string, Value](8)}
}

func (g *globals) get(name string) (Value, bool) {
	return g.m.Get(name)
}

func (g *globals) set(name string, v Value) {
	g.m.Put(name, v)
}
