// Embedder - sentence embeddings over stdin/stdout.
//
// Reads a JSON payload of texts from standard input, encodes each text with
// a fixed pretrained sentence-embedding model, and prints the vectors as a
// single JSON line on standard output.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/asteroid-belt/embedder/internal/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
