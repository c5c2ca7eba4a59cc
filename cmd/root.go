package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the codemart CLI until the command finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "codemart",
		Short:         "Buy and sell code snippets for Sepolia ether.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(
		newConnectCmd(),
		newAccountCmd(),
		newWatchCmd(),
		newListingsCmd(),
		newPurchaseCmd(),
		newReconcileCmd(),
		newHistoryCmd(),
	)
	return rootCmd
}
