package main

import (
	"github.com/spf13/cobra"

	"github.com/orgboard-io/orgboard/pkg/commands"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Migrate(args[0])
		},
	}
}
