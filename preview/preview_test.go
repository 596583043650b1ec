// ABOUTME: Tests for the fabricated preview generator
// ABOUTME: Covers truncation, empty uploads, and read-failure propagation
package preview

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestGenerateBuildsExtract(t *testing.T) {
	g := NewDeterministicGenerator()

	got, err := g.Generate("cert.pdf", strings.NewReader("Insured: Acme Risk Ltd."))
	require.NoError(t, err)
	assert.Contains(t, got, "cert.pdf")
	assert.Contains(t, got, "Preview: Insured: Acme Risk Ltd.")
	assert.Contains(t, got, "Signal: Detected coverage limits and renewal window.")
}

func TestGenerateTruncatesPreview(t *testing.T) {
	g := NewDeterministicGenerator()

	long := strings.Repeat("a", 500)
	got, err := g.Generate("big.txt", strings.NewReader(long))
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Preview: "+strings.Repeat("a", 180), lines[1])
}

func TestGenerateEmptyUpload(t *testing.T) {
	g := NewDeterministicGenerator()

	got, err := g.Generate("blank.bin", strings.NewReader(""))
	require.NoError(t, err)
	assert.Contains(t, got, "Preview: Binary document")
}

func TestGenerateReadFailure(t *testing.T) {
	g := NewDeterministicGenerator()

	_, err := g.Generate("bad.pdf", failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.pdf")
}
