package machine

// NilType is the type of Nil. Represented as a byte, not struct{}, so that
// Nil may be a constant.
type NilType byte

// Nil is the machine's only nil value.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }
