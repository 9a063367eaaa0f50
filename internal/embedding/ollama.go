package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/models"
)

// OllamaProvider implements Provider using a local Ollama server. Ollama has
// no batch endpoint, so each text is one request.
type OllamaProvider struct {
	host    string
	model   string
	client  *http.Client
	limiter *rate.Limiter
}

// NewOllama creates an Ollama embedding provider.
func NewOllama(cfg config.ProviderConfig) *OllamaProvider {
	host := cfg.OllamaHost
	if host == "" {
		host = config.DefaultOllamaHost
	}

	// Unlimited unless a requests-per-minute cap is configured
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), cfg.RateLimit)
	}

	return &OllamaProvider{
		host:  host,
		model: models.OllamaModelName,
		client: &http.Client{
			Timeout: 60 * time.Second, // Local models may be slow on first load
		},
		limiter: limiter,
	}
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

// EmbedBatch generates embeddings for all texts, one request per text,
// preserving input order.
func (p *OllamaProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := p.embedSingle(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		embeddings[i] = vector
	}
	return embeddings, nil
}

func (p *OllamaProvider) embedSingle(ctx context.Context, text string) ([]float32, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(ollamaEmbeddingRequest{
		Model:  p.model,
		Prompt: text,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama API error: %d - %s", resp.StatusCode, string(msg))
	}

	var embResp ollamaEmbeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(embResp.Embedding) == 0 {
		return nil, ErrNoVectorReturned
	}

	return embResp.Embedding, nil
}

// Model returns the model identifier sent to the backend.
func (p *OllamaProvider) Model() string {
	return p.model
}

// Dimension returns the vector width the model produces.
func (p *OllamaProvider) Dimension() int {
	return models.ModelDimension
}
