package chunker

import (
	"strings"

	"github.com/securebyte/securebyte/pkg/types"
)

// DefaultLinesPerChunk is the window size used when none is configured
const DefaultLinesPerChunk = 200

// Fallback splits raw text into fixed-size line windows. It has no
// semantic awareness and cannot fail: non-empty input always yields at
// least one chunk, empty input yields none.
type Fallback struct {
	linesPerChunk int
}

// NewFallback creates a line-window chunker. Non-positive window sizes
// fall back to DefaultLinesPerChunk.
func NewFallback(linesPerChunk int) *Fallback {
	if linesPerChunk <= 0 {
		linesPerChunk = DefaultLinesPerChunk
	}
	return &Fallback{linesPerChunk: linesPerChunk}
}

// Segment splits source into contiguous, non-overlapping windows of
// exactly linesPerChunk lines; the final window may be shorter. Indices
// are assigned in window order.
func (f *Fallback) Segment(source string) []types.Chunk {
	lines := splitLines(source)
	if len(lines) == 0 {
		return nil
	}

	chunks := make([]types.Chunk, 0, (len(lines)+f.linesPerChunk-1)/f.linesPerChunk)
	for i := 0; i < len(lines); i += f.linesPerChunk {
		end := i + f.linesPerChunk
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, types.Chunk{
			Index: len(chunks),
			Text:  strings.Join(lines[i:end], "\n"),
			Kind:  types.ChunkWindow,
		})
	}

	return chunks
}

// splitLines splits on newlines without manufacturing a trailing empty
// line for newline-terminated text.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
