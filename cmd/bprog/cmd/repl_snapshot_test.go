package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestREPLTranscript runs a short multi-line program through the REPL
// driver and snapshots the full "Stack: .../Error: ..." transcript, one
// line per input line. This exercises the REPL's per-line error
// recovery (spec.md §4.7) alongside normal evaluation.
func TestREPLTranscript(t *testing.T) {
	program := strings.Join([]string{
		"1 2 +",
		"dup *",
		"1 0 /",
		"pop",
		"square { dup * } fun 5 square",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runREPLWithInput(&out, strings.NewReader(program)); err != nil {
		t.Fatal(err)
	}

	snaps.MatchSnapshot(t, "repl_transcript", out.String())
}
