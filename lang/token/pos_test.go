package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPos(t *testing.T) {
	fset := NewFileSet()
	f := fset.AddFile("test.cor", -1, 20)
	f.AddLine(5)
	f.AddLine(12)

	// byte offsets: line 1 = [0,5), line 2 = [5,12), line 3 = [12,20)
	pos := f.Pos(6) // second byte of line 2

	require.Equal(t, "test.cor:2:2", FormatPos(PosLong, f, pos, true))
	require.Equal(t, ":2:2", FormatPos(PosLong, f, pos, false))
	require.Equal(t, "6", FormatPos(PosOffsets, f, pos, true))
	require.Equal(t, "test.cor:-:-", FormatPos(PosLong, f, NoPos, true))
	require.Equal(t, "", FormatPos(PosNone, f, pos, true))
}
