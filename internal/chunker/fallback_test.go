package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/securebyte/securebyte/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numberedLines builds a synthetic source of n lines
func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestFallback_WindowSizes(t *testing.T) {
	f := NewFallback(200)
	chunks := f.Segment(numberedLines(450))

	require.Len(t, chunks, 3)
	assert.Len(t, strings.Split(chunks[0].Text, "\n"), 200)
	assert.Len(t, strings.Split(chunks[1].Text, "\n"), 200)
	assert.Len(t, strings.Split(chunks[2].Text, "\n"), 50)

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
		assert.Equal(t, types.ChunkWindow, chunk.Kind)
	}

	// Windows are contiguous and non-overlapping.
	assert.True(t, strings.HasPrefix(chunks[0].Text, "line 1\n"))
	assert.True(t, strings.HasPrefix(chunks[1].Text, "line 201\n"))
	assert.True(t, strings.HasPrefix(chunks[2].Text, "line 401\n"))
	assert.True(t, strings.HasSuffix(chunks[2].Text, "line 450"))
}

func TestFallback_ShortInput(t *testing.T) {
	f := NewFallback(200)
	chunks := f.Segment("only line")

	require.Len(t, chunks, 1)
	assert.Equal(t, "only line", chunks[0].Text)
}

func TestFallback_EmptyInput(t *testing.T) {
	f := NewFallback(200)
	assert.Empty(t, f.Segment(""))
}

func TestFallback_Idempotent(t *testing.T) {
	src := numberedLines(37)
	f := NewFallback(10)

	first := f.Segment(src)
	second := f.Segment(src)

	assert.Equal(t, first, second)
}

func TestFallback_DefaultWindow(t *testing.T) {
	tests := []struct {
		name   string
		window int
	}{
		{"zero falls back to default", 0},
		{"negative falls back to default", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFallback(tt.window)
			assert.Equal(t, DefaultLinesPerChunk, f.linesPerChunk)
		})
	}
}

func TestFallback_CustomWindow(t *testing.T) {
	f := NewFallback(3)
	chunks := f.Segment("a\nb\nc\nd")

	require.Len(t, chunks, 2)
	assert.Equal(t, "a\nb\nc", chunks[0].Text)
	assert.Equal(t, "d", chunks[1].Text)
}
