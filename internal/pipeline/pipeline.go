// Package pipeline implements the encode run: one JSON request read in full
// from the input, one JSON line written to the output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/embedding"
	"github.com/asteroid-belt/embedder/internal/log"
	"github.com/asteroid-belt/embedder/internal/models"
)

// Run reads the request envelope from in, encodes the texts with the
// configured provider, and writes exactly one JSON line to out.
//
// Provider construction and encoding failures are reported on out as
// {"error": ...} and returned as errors, so the process exits non-zero.
// Input parsing failures are returned without touching out: they are outside
// the error-envelope contract and surface as unstructured failures.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var req models.EncodeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	texts := req.Texts

	provider, err := embedding.New(cfg.Provider)
	if err != nil {
		return fail(out, err)
	}

	log.Printf("embedder: encoding %d text(s) with %s via %s\n", len(texts), provider.Model(), cfg.Provider.Name)

	embeddings := make([][]float32, 0, len(texts))
	if len(texts) > 0 {
		vectors, err := provider.EmbedBatch(ctx, texts)
		if err != nil {
			return fail(out, err)
		}
		if len(vectors) != len(texts) {
			return fail(out, embedding.ErrVectorCountMismatch)
		}
		embeddings = vectors
	}

	return emit(out, models.EncodeResult{Embeddings: embeddings})
}

// fail writes the error envelope and returns err so the caller exits
// non-zero. A failure to write the envelope itself takes precedence.
func fail(out io.Writer, err error) error {
	if emitErr := emit(out, models.EncodeError{Error: err.Error()}); emitErr != nil {
		return emitErr
	}
	return err
}

func emit(out io.Writer, v interface{}) error {
	// Encoder appends the trailing newline, keeping the output to one line.
	if err := json.NewEncoder(out).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
