package buildinfo

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	for _, want := range []string{
		"Build version: N/A",
		"Build date: N/A",
		"Build commit: N/A",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
