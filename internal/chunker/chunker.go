package chunker

import (
	"errors"

	"github.com/securebyte/securebyte/pkg/types"
)

// ErrParseFailed reports that structural segmentation could not produce
// chunks. It is recovered internally by the façade and never surfaces to
// callers of Chunk.
var ErrParseFailed = errors.New("structural parse failed")

// Chunker is the façade over structural and line-window segmentation and
// the only chunking entry point the dispatcher consumes.
type Chunker struct {
	structural *Structural
	fallback   *Fallback
}

// New creates a Chunker with the default fallback window size
func New() *Chunker {
	return NewWithWindow(DefaultLinesPerChunk)
}

// NewWithWindow creates a Chunker with an explicit fallback window size
func NewWithWindow(linesPerChunk int) *Chunker {
	return &Chunker{
		structural: NewStructural(),
		fallback:   NewFallback(linesPerChunk),
	}
}

// Chunk segments source structurally, falling back to fixed line windows
// over the whole original text when the structural pass fails. It never
// returns an error; empty input yields zero chunks.
func (c *Chunker) Chunk(source string) []types.Chunk {
	chunks, err := c.structural.Segment(source)
	if err != nil {
		return c.fallback.Segment(source)
	}
	return chunks
}
