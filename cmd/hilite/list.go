// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCmdList(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lexers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TAG\tTITLE\tALIASES\tFILENAMES")

			for _, def := range a.reg.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					def.Tag(), def.Title(), strings.Join(def.Aliases(), ","), strings.Join(def.Filenames(), ","))
			}

			return tw.Flush()
		},
	}
}
