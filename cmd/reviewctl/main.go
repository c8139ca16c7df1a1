// reviewctl analyzes review text from the terminal and manages the stored AI key.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/reviewflow/cmd/reviewctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
