package config

// Provider backend names.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// DefaultOllamaHost is used when no Ollama address is configured.
const DefaultOllamaHost = "http://localhost:11434"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:       ProviderOpenAI,
			OllamaHost: DefaultOllamaHost,
			RateLimit:  0, // Unlimited; hosted endpoints may want EMBEDDER_RATE_LIMIT
		},
	}
}
