// Command mediaidctl is the operator CLI: database migrations, admin tokens
// and one-off capability calls from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/config"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	root := &cobra.Command{
		Use:           "mediaidctl",
		Short:         "MediAid AI operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	log := logging.NewWithOutput(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	root.AddCommand(
		newMigrateCmd(cfg, log),
		newTokenCmd(cfg),
		newAskCmd(cfg, log),
	)
	return root
}
