package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	origOut, origErr := Stdout, Stderr
	Stdout, Stderr = &stdout, &stderr
	t.Cleanup(func() {
		Stdout, Stderr = origOut, origErr
	})
	return &stdout, &stderr
}

func TestMessagesGoToTheirStreams(t *testing.T) {
	stdout, stderr := capture(t)

	Success("Generated %d files", 4)
	Error("failed to connect: %s", "refused")

	assert.Contains(t, stdout.String(), "Generated 4 files\n")
	assert.NotContains(t, stdout.String(), "refused")
	assert.Contains(t, stderr.String(), "failed to connect: refused\n")
}

func TestProgressPrefixesEachLine(t *testing.T) {
	stdout, _ := capture(t)

	w := Progress()
	n, err := w.Write([]byte("Generating repository for User\nGenerating service for User\n"))
	assert.NoError(t, err)
	assert.Equal(t, 59, n)

	out := stdout.String()
	assert.Contains(t, out, "Generating repository for User\n")
	assert.Contains(t, out, "Generating service for User\n")
	assert.Equal(t, 2, bytes.Count(stdout.Bytes(), []byte("→")))
}
