package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/embedder/internal/config"
	"github.com/asteroid-belt/embedder/internal/log"
	"github.com/asteroid-belt/embedder/internal/pipeline"
	"github.com/asteroid-belt/embedder/pkg/version"
)

// runEncode is the root command: stdin in, one JSON line out.
func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := log.Init(cfg.LogFile); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Close() }()

	// Startup banner, diagnostic only
	log.Printf("--- %s activated, reading request from stdin ---\n", version.Info())

	return pipeline.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
}
