// ABOUTME: Fabricated document text previews
// ABOUTME: Reads upload bytes and produces a deterministic-format extract
package preview

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// previewLimit is how many leading bytes of the upload make the preview.
const previewLimit = 180

var signalHints = []string{
	"Detected coverage limits and renewal window.",
	"Identified named insured and key endorsements.",
	"Extracted claim timeline with adjuster notes.",
}

// Generator fabricates extract text for uploaded documents. There is no real
// OCR behind it; the output is a byte preview plus a canned signal line.
type Generator struct {
	pick func(n int) int
}

// NewGenerator returns a generator with randomized hint selection.
func NewGenerator() *Generator {
	return &Generator{pick: rand.Intn}
}

// NewDeterministicGenerator always selects the first hint. Used by tests and
// by callers that need stable output.
func NewDeterministicGenerator() *Generator {
	return &Generator{pick: func(int) int { return 0 }}
}

// Generate reads the upload to completion and builds the extract. A failed
// read surfaces as an error; there is no partial or silent-success path.
func (g *Generator) Generate(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload %q: %w", name, err)
	}

	preview := string(data)
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	preview = strings.ToValidUTF8(preview, "")
	if preview == "" {
		preview = "Binary document"
	}

	hint := signalHints[g.pick(len(signalHints))]
	return fmt.Sprintf("📄 %s\nPreview: %s\nSignal: %s", name, preview, hint), nil
}
