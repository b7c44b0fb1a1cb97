package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Provider configuration
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"

	// Default models
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-5"

	// API endpoints
	openaiAPIURL    = "https://api.openai.com/v1/chat/completions"
	anthropicAPIURL = "https://api.anthropic.com/v1/messages"

	anthropicAPIVersion = "2023-06-01"

	// Sampling and output limits
	analysisTemperature = 0.1
	maxOutputTokens     = 4096

	// Retry configuration
	MaxRetries        = 3
	InitialBackoffMs  = 100
	MaxBackoffMs      = 5000
	BackoffMultiplier = 2.0

	// Environment variables
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// OpenAIProvider implements Client using the OpenAI chat completions API
type OpenAIProvider struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	cache      *Cache
}

// NewOpenAIProvider creates a new OpenAI analysis client
func NewOpenAIProvider(apiKey string, cache *Cache) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvOpenAIAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s not set", ErrNoProviderEnabled, EnvOpenAIAPIKey)
	}

	return &OpenAIProvider{
		apiKey: apiKey,
		model:  DefaultOpenAIModel,
		apiURL: openaiAPIURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		cache: cache,
	}, nil
}

func (o *OpenAIProvider) Analyze(ctx context.Context, persona, chunkText string) (string, error) {
	if err := ValidateInput(chunkText); err != nil {
		return "", err
	}

	hash := ComputeHash(persona, chunkText)
	if o.cache != nil {
		if analysis, ok := o.cache.Get(hash); ok {
			return analysis, nil
		}
	}

	config := DefaultRetryConfig()
	analysis, err := retryWithBackoff(ctx, config, func() (string, error) {
		return o.callAPI(ctx, persona, chunkText)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	if o.cache != nil {
		o.cache.Set(hash, analysis)
	}

	return analysis, nil
}

func (o *OpenAIProvider) callAPI(ctx context.Context, persona, chunkText string) (string, error) {
	reqBody := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": persona},
			{"role": "user", "content": chunkText},
		},
		"temperature": analysisTemperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return apiResp.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) Provider() string {
	return ProviderOpenAI
}

func (o *OpenAIProvider) Model() string {
	return o.model
}

func (o *OpenAIProvider) Close() error {
	o.httpClient.CloseIdleConnections()
	return nil
}

// AnthropicProvider implements Client using the Anthropic messages API
type AnthropicProvider struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	cache      *Cache
}

// NewAnthropicProvider creates a new Anthropic analysis client
func NewAnthropicProvider(apiKey string, cache *Cache) (*AnthropicProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAnthropicAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s not set", ErrNoProviderEnabled, EnvAnthropicAPIKey)
	}

	return &AnthropicProvider{
		apiKey: apiKey,
		model:  DefaultAnthropicModel,
		apiURL: anthropicAPIURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		cache: cache,
	}, nil
}

func (a *AnthropicProvider) Analyze(ctx context.Context, persona, chunkText string) (string, error) {
	if err := ValidateInput(chunkText); err != nil {
		return "", err
	}

	hash := ComputeHash(persona, chunkText)
	if a.cache != nil {
		if analysis, ok := a.cache.Get(hash); ok {
			return analysis, nil
		}
	}

	config := DefaultRetryConfig()
	analysis, err := retryWithBackoff(ctx, config, func() (string, error) {
		return a.callAPI(ctx, persona, chunkText)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	if a.cache != nil {
		a.cache.Set(hash, analysis)
	}

	return analysis, nil
}

func (a *AnthropicProvider) callAPI(ctx context.Context, persona, chunkText string) (string, error) {
	reqBody := map[string]any{
		"model":      a.model,
		"max_tokens": maxOutputTokens,
		"system":     persona,
		"messages": []map[string]string{
			{"role": "user", "content": chunkText},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	for _, block := range apiResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content returned")
}

func (a *AnthropicProvider) Provider() string {
	return ProviderAnthropic
}

func (a *AnthropicProvider) Model() string {
	return a.model
}

func (a *AnthropicProvider) Close() error {
	a.httpClient.CloseIdleConnections()
	return nil
}
