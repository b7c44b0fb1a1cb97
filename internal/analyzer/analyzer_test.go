package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	a := ComputeHash("persona", "chunk")
	b := ComputeHash("persona", "chunk")
	c := ComputeHash("persona", "other chunk")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Persona participates in the key: same chunk under a different
	// persona is a different cache entry.
	d := ComputeHash("other persona", "chunk")
	assert.NotEqual(t, a, d)

	// Boundary byte keeps persona/chunk splits from colliding.
	assert.NotEqual(t, ComputeHash("ab", "c"), ComputeHash("a", "bc"))
}

func TestCache(t *testing.T) {
	cache := NewCache(2)

	cache.Set("h1", "analysis one")
	cache.Set("h2", "analysis two")

	got, ok := cache.Get("h1")
	require.True(t, ok)
	assert.Equal(t, "analysis one", got)

	// LRU eviction: h2 is the oldest untouched entry after the h1 read.
	cache.Set("h3", "analysis three")
	_, ok = cache.Get("h2")
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestCache_NonPositiveSize(t *testing.T) {
	cache := NewCache(0)
	cache.Set("h", "v")
	got, ok := cache.Get("h")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestRetryWithBackoff(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		config := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond, Multiplier: 2.0}

		result, err := retryWithBackoff(context.Background(), config, func() (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		config := RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond, Multiplier: 2.0}

		_, err := retryWithBackoff(context.Background(), config, func() (string, error) {
			return "", errors.New("permanent")
		})

		require.Error(t, err)
		assert.Equal(t, "permanent", err.Error())
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		config := RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour, Multiplier: 2.0}

		_, err := retryWithBackoff(ctx, config, func() (string, error) {
			attempts++
			cancel()
			return "", errors.New("transient")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput("func main() {}"))
	assert.ErrorIs(t, ValidateInput(""), ErrEmptyChunk)
}
