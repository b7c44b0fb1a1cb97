package analyzer

import (
	"fmt"
	"os"
	"strings"
)

// EnvProvider selects the analysis provider explicitly
const EnvProvider = "SECUREBYTE_PROVIDER"

// Config holds analysis client configuration
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	CacheSize int
}

// NewFromEnv creates an analysis client based on environment variables.
// Priority:
//  1. SECUREBYTE_PROVIDER (openai, anthropic, mock)
//  2. Check for API keys: OPENAI_API_KEY, ANTHROPIC_API_KEY
//  3. Default to mock if no API keys found
func NewFromEnv() (Client, error) {
	provider := os.Getenv(EnvProvider)
	openaiKey := os.Getenv(EnvOpenAIAPIKey)
	anthropicKey := os.Getenv(EnvAnthropicAPIKey)

	cache := NewCache(DefaultCacheSize)

	if provider != "" {
		provider = strings.ToLower(provider)
		switch provider {
		case ProviderOpenAI:
			return NewOpenAIProvider(openaiKey, cache)
		case ProviderAnthropic:
			return NewAnthropicProvider(anthropicKey, cache)
		case ProviderMock:
			return NewMockProvider(cache), nil
		default:
			return nil, fmt.Errorf("%w: unknown provider %s", ErrUnsupportedModel, provider)
		}
	}

	// Auto-detect based on available API keys
	if openaiKey != "" {
		return NewOpenAIProvider(openaiKey, cache)
	}
	if anthropicKey != "" {
		return NewAnthropicProvider(anthropicKey, cache)
	}

	// Offline fallback
	return NewMockProvider(cache), nil
}

// New creates an analysis client with explicit configuration
func New(cfg Config) (Client, error) {
	var cache *Cache
	if cfg.CacheSize > 0 {
		cache = NewCache(cfg.CacheSize)
	}

	provider := strings.ToLower(cfg.Provider)
	switch provider {
	case ProviderOpenAI:
		c, err := NewOpenAIProvider(cfg.APIKey, cache)
		if err != nil {
			return nil, err
		}
		if cfg.Model != "" {
			c.model = cfg.Model
		}
		return c, nil
	case ProviderAnthropic:
		c, err := NewAnthropicProvider(cfg.APIKey, cache)
		if err != nil {
			return nil, err
		}
		if cfg.Model != "" {
			c.model = cfg.Model
		}
		return c, nil
	case ProviderMock:
		return NewMockProvider(cache), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %s", ErrUnsupportedModel, cfg.Provider)
	}
}

// DetectProvider returns the provider that would be used based on the
// current environment.
func DetectProvider() string {
	provider := os.Getenv(EnvProvider)
	if provider != "" {
		return strings.ToLower(provider)
	}

	if os.Getenv(EnvOpenAIAPIKey) != "" {
		return ProviderOpenAI
	}
	if os.Getenv(EnvAnthropicAPIKey) != "" {
		return ProviderAnthropic
	}

	return ProviderMock
}
