package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Common errors
var (
	ErrEmptyChunk        = errors.New("chunk text cannot be empty")
	ErrProviderFailed    = errors.New("analysis provider failed")
	ErrUnsupportedModel  = errors.New("unsupported provider")
	ErrNoProviderEnabled = errors.New("no analysis provider configured")
)

// DefaultPersona is the system instruction sent alongside every chunk.
// It can be overridden per client via configuration.
const DefaultPersona = "You are 'SecureByte', a world-class AI security and code quality analyst. " +
	"Your task is to analyze the following source code chunk. " +
	"Identify potential bugs, logic errors, and security vulnerabilities " +
	"(like SQL injection, XSS, insecure file handling, etc.). " +
	"Provide a concise, bulleted list of your findings. " +
	"If there are no issues, simply state: 'No issues found in this chunk.'"

// Client is the single capability the dispatcher consumes: submit a chunk
// with a persona instruction, receive analysis text or an error.
//
// Implementations must not mutate chunkText and must be safe to call
// concurrently from independent tasks with independent inputs.
type Client interface {
	// Analyze submits one chunk for analysis and returns the analysis text
	Analyze(ctx context.Context, persona, chunkText string) (string, error)

	// Provider returns the provider name
	Provider() string

	// Model returns the model name
	Model() string

	// Close releases any resources held by the client
	Close() error
}

// ComputeHash computes the SHA-256 hash of a persona+chunk pair for caching
func ComputeHash(persona, chunkText string) string {
	h := sha256.New()
	h.Write([]byte(persona))
	h.Write([]byte{0})
	h.Write([]byte(chunkText))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateInput validates the text submitted for analysis
func ValidateInput(chunkText string) error {
	if chunkText == "" {
		return ErrEmptyChunk
	}
	return nil
}
