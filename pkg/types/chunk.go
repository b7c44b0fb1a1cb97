package types

import (
	"crypto/sha256"
	"errors"
	"strings"
)

// ChunkKind describes how a chunk was carved out of the source file
type ChunkKind string

const (
	ChunkFunction ChunkKind = "function"
	ChunkTypeDecl ChunkKind = "type"
	ChunkLeftover ChunkKind = "leftover"
	ChunkWindow   ChunkKind = "window"
)

// TokensPerChar is the heuristic for estimating tokens (chars/4)
const TokensPerChar = 4

// Chunk is one independently analyzable unit of source text.
// Chunks are created by the chunker and never mutated afterward.
type Chunk struct {
	// Index is the 0-based position in source order. It doubles as the
	// dispatch tag and the report order.
	Index int

	// Text is the chunk body, including any hoisted import prefix.
	Text string

	// CarriedImports lists the import declarations that were hoisted onto
	// this chunk, verbatim and in original order. Empty when no imports
	// preceded the chunk.
	CarriedImports []string

	// Kind records the chunking decision that produced this chunk.
	Kind ChunkKind
}

// FirstLine returns the first non-blank line of the chunk, used for log
// labels and progress output.
func (c *Chunk) FirstLine() string {
	for _, line := range strings.Split(c.Text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// TokenEstimate estimates the number of tokens in the chunk.
// Uses a simple heuristic: characters / 4
func (c *Chunk) TokenEstimate() int {
	return len(c.Text) / TokensPerChar
}

// ContentHash computes the SHA-256 hash of the chunk text, used as the
// analysis cache key.
func (c *Chunk) ContentHash() [32]byte {
	return sha256.Sum256([]byte(c.Text))
}

// Validate checks basic chunk integrity
func (c *Chunk) Validate() error {
	if c.Index < 0 {
		return errors.New("chunk index must be non-negative")
	}
	if c.Text == "" {
		return errors.New("chunk text cannot be empty")
	}

	switch c.Kind {
	case ChunkFunction, ChunkTypeDecl, ChunkLeftover, ChunkWindow:
	default:
		return errors.New("invalid chunk kind")
	}

	return nil
}
