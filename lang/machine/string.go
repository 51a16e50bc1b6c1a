package machine

// String is the type of a string value. Its display is the raw content,
// unquoted (quoting is only used by the disassembler's constant display).
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }
