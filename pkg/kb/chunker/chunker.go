package chunker

import (
	"regexp"
	"strings"
)

// DefaultMinLen filters headings-only and accidental one-line fragments that
// carry nothing worth retrieving.
const DefaultMinLen = 50

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Chunker splits article markdown into retrievable paragraphs.
type Chunker struct {
	minLen int
}

func New(minLen int) *Chunker {
	if minLen <= 0 {
		minLen = DefaultMinLen
	}
	return &Chunker{minLen: minLen}
}

func (c *Chunker) MinLen() int { return c.minLen }

// Split cuts markdown on blank-line boundaries, trims each segment and drops
// anything shorter than the minimum. Document order is preserved. A very
// short article can legitimately produce zero chunks.
func (c *Chunker) Split(markdown string) []string {
	var out []string
	for _, part := range blankLine.Split(markdown, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) >= c.minLen {
			out = append(out, part)
		}
	}
	return out
}
