package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgboard",
		Short: "Organisation board data tools",
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSummaryCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
