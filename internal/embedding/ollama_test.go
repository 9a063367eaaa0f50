package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/models"
)

// newOllamaTestServer returns a server that derives a deterministic vector
// from the prompt length, so order and idempotence can be asserted.
func newOllamaTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		var req ollamaEmbeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Model != models.OllamaModelName {
			t.Errorf("expected model %q, got %q", models.OllamaModelName, req.Model)
		}
		vector := make([]float32, models.ModelDimension)
		for i := range vector {
			vector[i] = float32(len(req.Prompt))
		}
		_ = json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: vector})
	}))
}

func TestOllamaProvider_EmbedBatch(t *testing.T) {
	server := newOllamaTestServer(t)
	defer server.Close()

	provider := NewOllama(config.ProviderConfig{OllamaHost: server.URL})

	vectors, err := provider.EmbedBatch(context.Background(), []string{"hello", "hi"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	for i, v := range vectors {
		if len(v) != models.ModelDimension {
			t.Errorf("vector %d: expected %d dims, got %d", i, models.ModelDimension, len(v))
		}
	}
	// Order preserved: "hello" has 5 chars, "hi" has 2
	if vectors[0][0] != 5 || vectors[1][0] != 2 {
		t.Errorf("vectors out of order: got %v, %v", vectors[0][0], vectors[1][0])
	}
}

func TestOllamaProvider_Deterministic(t *testing.T) {
	server := newOllamaTestServer(t)
	defer server.Close()

	provider := NewOllama(config.ProviderConfig{OllamaHost: server.URL})

	vectors, err := provider.EmbedBatch(context.Background(), []string{"same text", "same text"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for i := range vectors[0] {
		if vectors[0][i] != vectors[1][i] {
			t.Fatalf("vectors differ at index %d", i)
		}
	}
}

func TestOllamaProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOllama(config.ProviderConfig{OllamaHost: server.URL})

	_, err := provider.EmbedBatch(context.Background(), []string{"hello"})
	if err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestOllamaProvider_Defaults(t *testing.T) {
	provider := NewOllama(config.ProviderConfig{})

	if provider.host != config.DefaultOllamaHost {
		t.Errorf("expected default host %q, got %q", config.DefaultOllamaHost, provider.host)
	}
	if provider.Model() != models.OllamaModelName {
		t.Errorf("expected model %q, got %q", models.OllamaModelName, provider.Model())
	}
	if provider.Dimension() != models.ModelDimension {
		t.Errorf("expected dimension %d, got %d", models.ModelDimension, provider.Dimension())
	}
}
