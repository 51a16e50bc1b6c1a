package token

import "fmt"

// PosMode controls how a Pos is rendered by FormatPos.
type PosMode int

const (
	// PosLong renders "filename:line:col".
	PosLong PosMode = iota
	// PosOffsets renders the raw 0-based byte offset within the file.
	PosOffsets
	// PosRaw renders the raw Pos value.
	PosRaw
	// PosNone renders nothing.
	PosNone
)

// FormatPos renders pos according to mode, resolving line/column
// information from f. If withFilename is false, the filename component
// (for PosLong) is omitted.
func FormatPos(mode PosMode, f *File, pos Pos, withFilename bool) string {
	switch mode {
	case PosNone:
		return ""
	case PosRaw:
		return fmt.Sprintf("%d", pos)
	case PosOffsets:
		if pos == NoPos {
			return "-"
		}
		return fmt.Sprintf("%d", f.Offset(pos))
	default: // PosLong
		if pos == NoPos {
			name := ""
			if withFilename {
				name = f.Name()
			}
			return fmt.Sprintf("%s:-:-", name)
		}
		p := f.Position(pos)
		name := ""
		if withFilename {
			name = p.Filename
		}
		return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
	}
}
