package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider(t *testing.T) {
	t.Run("successful analysis", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callCount++

			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Messages, 2)
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, DefaultPersona, body.Messages[0].Content)
			assert.Equal(t, "user", body.Messages[1].Role)

			resp := map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"content": "- insecure file handling on line 3"}},
				},
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		provider := &OpenAIProvider{
			apiKey:     "test-key",
			model:      DefaultOpenAIModel,
			apiURL:     server.URL,
			httpClient: &http.Client{Timeout: 5 * time.Second},
			cache:      NewCache(10),
		}

		analysis, err := provider.Analyze(context.Background(), DefaultPersona, "func main() {}")
		require.NoError(t, err)
		assert.Equal(t, "- insecure file handling on line 3", analysis)
		assert.Equal(t, 1, callCount)
	})

	t.Run("cache hit skips api call", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callCount++
			resp := map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"content": "No issues found in this chunk."}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		provider := &OpenAIProvider{
			apiKey:     "test-key",
			model:      DefaultOpenAIModel,
			apiURL:     server.URL,
			httpClient: &http.Client{Timeout: 5 * time.Second},
			cache:      NewCache(10),
		}

		ctx := context.Background()
		first, err := provider.Analyze(ctx, DefaultPersona, "var x = 1")
		require.NoError(t, err)
		second, err := provider.Analyze(ctx, DefaultPersona, "var x = 1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, callCount)
	})

	t.Run("api error retried then surfaced", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callCount++
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": "rate limited"}`))
		}))
		defer server.Close()

		provider := &OpenAIProvider{
			apiKey:     "test-key",
			model:      DefaultOpenAIModel,
			apiURL:     server.URL,
			httpClient: &http.Client{Timeout: 5 * time.Second},
		}

		_, err := provider.Analyze(context.Background(), DefaultPersona, "func main() {}")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderFailed)
		assert.Contains(t, err.Error(), "429")
		assert.Equal(t, MaxRetries, callCount)
	})

	t.Run("empty chunk rejected", func(t *testing.T) {
		provider := &OpenAIProvider{apiKey: "test-key"}
		_, err := provider.Analyze(context.Background(), DefaultPersona, "")
		assert.ErrorIs(t, err, ErrEmptyChunk)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv(EnvOpenAIAPIKey, "")
		_, err := NewOpenAIProvider("", nil)
		assert.ErrorIs(t, err, ErrNoProviderEnabled)
	})
}

func TestAnthropicProvider(t *testing.T) {
	t.Run("successful analysis", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, anthropicAPIVersion, r.Header.Get("anthropic-version"))

			var body struct {
				System   string `json:"system"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, DefaultPersona, body.System)
			require.Len(t, body.Messages, 1)
			assert.Equal(t, "user", body.Messages[0].Role)

			resp := map[string]any{
				"content": []map[string]string{
					{"type": "text", "text": "- SQL injection risk in query builder"},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		provider := &AnthropicProvider{
			apiKey:     "test-key",
			model:      DefaultAnthropicModel,
			apiURL:     server.URL,
			httpClient: &http.Client{Timeout: 5 * time.Second},
		}

		analysis, err := provider.Analyze(context.Background(), DefaultPersona, `db.Query("SELECT " + input)`)
		require.NoError(t, err)
		assert.Equal(t, "- SQL injection risk in query builder", analysis)
	})

	t.Run("no text content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"content": []map[string]string{}})
		}))
		defer server.Close()

		provider := &AnthropicProvider{
			apiKey:     "test-key",
			model:      DefaultAnthropicModel,
			apiURL:     server.URL,
			httpClient: &http.Client{Timeout: 5 * time.Second},
		}

		_, err := provider.Analyze(context.Background(), DefaultPersona, "func main() {}")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderFailed)
	})
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider(NewCache(10))
	ctx := context.Background()

	first, err := m.Analyze(ctx, DefaultPersona, "func a() {}")
	require.NoError(t, err)
	again, err := m.Analyze(ctx, DefaultPersona, "func a() {}")
	require.NoError(t, err)
	other, err := m.Analyze(ctx, DefaultPersona, "func b() {}")
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)

	_, err = m.Analyze(ctx, DefaultPersona, "")
	assert.ErrorIs(t, err, ErrEmptyChunk)
}
