package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the recorded pins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pins, fingerprint, err := c.app.List(c.workspaceDir())
			if err != nil {
				return err
			}

			if len(pins) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pins recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "IDENTITY\tKIND\tLOCATION\tSTATE\tREVISION")
			for _, pin := range pins {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					pin.Ref.Identity, pin.Ref.Kind, pin.Ref.Location,
					pin.State.Description(), pin.State.Revision())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d pins, fingerprint %s\n", len(pins), fingerprint)
			return nil
		},
	}
}
