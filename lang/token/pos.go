// Package token defines the lexical token kinds of the language and
// re-exports the position/file bookkeeping types from the standard
// library's go/token package: a byte-offset Pos plus a FileSet capable of
// mapping an offset back to a 1-based line number via binary search over
// recorded line starts is exactly what go/token already provides, so
// there is no reason to hand-roll it.
package token

import realtoken "go/token"

type (
	// Pos is a byte offset into a File, exactly as in go/token. Its zero
	// value, NoPos, means "unknown position".
	Pos = realtoken.Pos

	// Position is the expanded, human-readable form of a Pos: filename,
	// byte offset, 1-based line and column.
	Position = realtoken.Position

	// File tracks the source text of a single file registered in a
	// FileSet, including the offsets of each line start, to support
	// Pos<->Position conversions.
	File = realtoken.File

	// FileSet is a collection of Files sharing a single address space of
	// Pos values, exactly as in go/token.
	FileSet = realtoken.FileSet
)

// NoPos is the zero Pos, denoting an unknown or absent position.
const NoPos = realtoken.NoPos

// NewFileSet creates a new, empty FileSet.
func NewFileSet() *FileSet { return realtoken.NewFileSet() }
