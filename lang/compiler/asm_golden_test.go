package compiler_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corvidlang/corvid/internal/filetest"
	"github.com/corvidlang/corvid/lang/compiler"
)

var testUpdateGoldenTests = flag.Bool("test.update-golden-tests", false, "If set, replace expected disassembler golden results with actual results.")

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// TestDisassembleGolden compiles each file under testdata/in and checks its
// disassembly against the matching golden file under testdata/out.
func TestDisassembleGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".cor") {
		t.Run(fi.Name(), func(t *testing.T) {
			fn, sink := compile(t, readFile(t, filepath.Join(srcDir, fi.Name())))
			if len(sink.errs) > 0 {
				t.Fatalf("unexpected compile errors: %v", sink.errs)
			}
			var buf strings.Builder
			if err := compiler.Disassemble(&buf, fn); err != nil {
				t.Fatal(err)
			}
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateGoldenTests)
		})
	}
}
