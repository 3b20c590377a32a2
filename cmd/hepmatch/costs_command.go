package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepmatch/cost"
)

func newCostsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "costs",
		Short: "List the available cost functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range cost.NewRegistry().Names() {
				suffix := ""
				if name == cost.DefaultName {
					suffix = " (default)"
				}
				fmt.Fprintf(out, "%s%s\n", name, suffix)
			}
			fmt.Fprintf(out, "%s<key>\n", cost.AttributePrefix)

			return nil
		},
	}
}
