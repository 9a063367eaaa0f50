// Package embedding provides the interface and implementations for
// generating text embeddings.
package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/asteroid-belt/embedder/internal/config"
)

var (
	// ErrNoVectorReturned indicates the provider responded without any vectors.
	ErrNoVectorReturned = errors.New("embedding: no vector returned")

	// ErrVectorCountMismatch indicates the provider returned a different
	// number of vectors than texts sent.
	ErrVectorCountMismatch = errors.New("embedding: vector count mismatch")
)

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// EmbedBatch generates one embedding per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the model identifier sent to the backend.
	Model() string

	// Dimension returns the vector width the model produces.
	Dimension() int
}

// New creates the provider selected by cfg. An unknown provider name or a
// missing credential is a construction error, reported the same way as a
// failed model load.
func New(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case config.ProviderOpenAI, "":
		return NewOpenAI(cfg)
	case config.ProviderOllama:
		return NewOllama(cfg), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Name)
	}
}
