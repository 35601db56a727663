// SPDX-License-Identifier: MIT
package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hilite/token"
)

func newCmdKinds() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the token kind taxonomy with short names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			if err := token.Outline(cmd.Context(), tw); err != nil {
				return err
			}

			return tw.Flush()
		},
	}
}
