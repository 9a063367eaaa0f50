// Package cli provides the command-line interface for the embedder tool.
package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/embedder/internal/models"
	"github.com/asteroid-belt/embedder/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "embedder",
	Short: "Compute sentence embeddings for a JSON payload of texts",
	Long: `Compute sentence embeddings for a JSON payload of texts.

Reads {"texts": [string, ...]} from standard input and writes exactly one
JSON line to standard output:

  success: {"embeddings": [[float, ...], ...]}
  failure: {"error": "<message>"}   (exit status 1)

The model is fixed (` + models.ModelName + `,
384 dimensions). Which backend serves it is configuration:

  EMBEDDER_PROVIDER    "openai" (any OpenAI-compatible server) or "ollama"
  OPENAI_API_KEY       key for hosted OpenAI-compatible endpoints
  EMBEDDER_BASE_URL    OpenAI-compatible endpoint override (TEI, LocalAI)
  OLLAMA_HOST          Ollama address (default http://localhost:11434)

Diagnostics go to stderr; standard output carries only the JSON envelope.`,
	SilenceUsage: true,
	RunE:         runEncode,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}
