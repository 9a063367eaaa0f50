package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/embedding"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the embedding model and provider configuration",
	Long: `Display the fixed embedding model, its dimension, and the backend
the current configuration would use for an encode run.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := embedding.New(cfg.Provider)
	if err != nil {
		return fmt.Errorf("configure provider: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Model: %s\n", provider.Model())
	fmt.Fprintf(w, "Dimension: %d\n", provider.Dimension())
	fmt.Fprintf(w, "Provider: %s\n", cfg.Provider.Name)
	if cfg.Provider.BaseURL != "" {
		fmt.Fprintf(w, "Base URL: %s\n", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Name == config.ProviderOllama {
		fmt.Fprintf(w, "Ollama Host: %s\n", cfg.Provider.OllamaHost)
	}
	if cfg.Provider.RateLimit > 0 {
		fmt.Fprintf(w, "Rate Limit: %d req/min\n", cfg.Provider.RateLimit)
	}
	return nil
}
