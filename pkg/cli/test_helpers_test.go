package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRootCmd creates a fresh root command with HOME and the
// process environment isolated so no real config leaks in.
func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NRQL2DQL_OUTPUT", "")
	t.Setenv("NRQL2DQL_MAPPINGS", "")
	return newRootCmd()
}

// captureStdout redirects os.Stdout to a pipe and returns a function
// that restores stdout and returns the captured output.
// Uses a goroutine to read concurrently, avoiding pipe buffer deadlocks.
func captureStdout(t *testing.T) func() string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	// Read concurrently to avoid pipe buffer deadlock on large outputs
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	return func() string {
		_ = w.Close()
		<-done
		os.Stdout = old
		return buf.String()
	}
}

// feedStdin replaces os.Stdin with a pipe carrying the given input and
// restores it when the test finishes.
func feedStdin(t *testing.T, input string) {
	t.Helper()
	old := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r

	go func() {
		_, _ = w.WriteString(input)
		_ = w.Close()
	}()

	t.Cleanup(func() {
		os.Stdin = old
		_ = r.Close()
	})
}
