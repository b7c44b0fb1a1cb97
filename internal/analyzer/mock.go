package analyzer

import (
	"context"
	"fmt"
)

// MockProvider implements Client without any network access. It returns a
// deterministic canned analysis derived from the chunk hash, which makes
// it usable for offline runs and as a test substitute.
type MockProvider struct {
	cache *Cache
}

// NewMockProvider creates a new offline analysis client
func NewMockProvider(cache *Cache) *MockProvider {
	return &MockProvider{cache: cache}
}

func (m *MockProvider) Analyze(ctx context.Context, persona, chunkText string) (string, error) {
	if err := ValidateInput(chunkText); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash := ComputeHash(persona, chunkText)
	if m.cache != nil {
		if analysis, ok := m.cache.Get(hash); ok {
			return analysis, nil
		}
	}

	analysis := fmt.Sprintf("No issues found in this chunk. (offline analysis %s)", hash[:12])

	if m.cache != nil {
		m.cache.Set(hash, analysis)
	}

	return analysis, nil
}

func (m *MockProvider) Provider() string {
	return ProviderMock
}

func (m *MockProvider) Model() string {
	return "mock-v1"
}

func (m *MockProvider) Close() error {
	return nil
}
