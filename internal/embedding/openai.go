package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/models"
)

// openAIClient is the subset of the go-openai client used here, extracted
// so tests can substitute a mock.
type openAIClient interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// OpenAIProvider implements Provider against any OpenAI-compatible
// embeddings endpoint (OpenAI itself, TEI, LocalAI).
type OpenAIProvider struct {
	client openAIClient
	model  openai.EmbeddingModel
}

// NewOpenAI creates an OpenAI-compatible embedding provider. A key is
// required for the hosted endpoint; self-hosted servers reached through
// BaseURL may run without one.
func NewOpenAI(cfg config.ProviderConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  openai.EmbeddingModel(models.ModelName),
	}, nil
}

// EmbedBatch generates embeddings for all texts in a single request.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, ErrNoVectorReturned
	}
	if len(resp.Data) != len(texts) {
		return nil, ErrVectorCountMismatch
	}

	result := make([][]float32, len(texts))
	for i, data := range resp.Data {
		result[i] = data.Embedding
	}
	return result, nil
}

// Model returns the model identifier sent to the backend.
func (p *OpenAIProvider) Model() string {
	return string(p.model)
}

// Dimension returns the vector width the model produces.
func (p *OpenAIProvider) Dimension() int {
	return models.ModelDimension
}
