// Package analyzer submits code chunks to an LLM analysis service.
//
// The analyzer supports multiple providers (OpenAI, Anthropic, and an
// offline mock) behind a single Client interface, with retry, caching,
// and error handling for production use. Clients are safe for concurrent
// use; the dispatcher calls one shared client from many tasks at once.
//
// # Basic Usage
//
//	// Create client (auto-detects provider from environment)
//	client, err := analyzer.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	analysis, err := client.Analyze(ctx, analyzer.DefaultPersona, chunk.Text)
//
// # Provider Selection
//
// The factory selects a provider based on environment variables:
//
//  1. If SECUREBYTE_PROVIDER is set → use specified provider
//  2. Else if OPENAI_API_KEY is set → use OpenAI
//  3. Else if ANTHROPIC_API_KEY is set → use Anthropic
//  4. Else → fallback to the mock provider (offline mode)
//
// Or use explicit configuration:
//
//	client, err := analyzer.New(analyzer.Config{
//	    Provider: "anthropic",
//	    APIKey:   key,
//	    Model:    "claude-sonnet-4-5",
//	})
//
// # Caching
//
// Results are cached in memory (LRU) by SHA-256 of persona+chunk, so
// re-analyzing an unchanged chunk in the same process skips the API call.
// Nothing is persisted across runs.
//
// # Failures
//
// Transient API failures are retried with exponential backoff. A call
// that still fails returns an error wrapping ErrProviderFailed; the
// dispatcher records it as that chunk's outcome without affecting any
// other chunk.
package analyzer
