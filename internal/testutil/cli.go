package testutil

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureOutput runs fn with os.Stdout redirected and returns what it wrote.
// Stdout is restored even if fn fails the test.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	restore := func() { os.Stdout = stdout }
	t.Cleanup(restore)

	captured := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(r)
		captured <- data
	}()

	fn()

	require.NoError(t, w.Close())
	restore()
	return string(<-captured)
}

// ParseJSON decodes the --json envelope a command printed
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &envelope), "output: %s", output)
	return envelope
}
