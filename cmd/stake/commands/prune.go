package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune [identities...]",
		Short: "Remove pins from the ledger (all of them when none are named)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Prune(c.workspaceDir(), args)
		},
	}
}
