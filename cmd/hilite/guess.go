// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hilite/registry"
)

var errNoHints = errors.New("a file, --filename or --mimetype is required")

func newCmdGuess(a *app) *cobra.Command {
	var (
		hints registry.Hints
		top   int
	)

	cmd := &cobra.Command{
		Use:   "guess [file]",
		Short: "Rank the lexers matching a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				if hints.Source, err = readSource(cmd, args[0]); err != nil {
					return
				}
				if hints.Filename == "" && args[0] != stdinPath {
					hints.Filename = args[0]
				}
			}
			if hints.Source == "" && hints.Filename == "" && hints.Mimetype == "" {
				return errNoHints
			}

			candidates := a.reg.Guess(hints)
			if top > 0 && len(candidates) > top {
				candidates = candidates[:top]
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TAG\tWEIGHT\tCONTENT")
			for _, c := range candidates {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", c.Definition.Tag(), c.Weight, c.Content)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&hints.Filename, "filename", "", "Filename hint, defaults to the file argument")
	cmd.Flags().StringVar(&hints.Mimetype, "mimetype", "", "Mimetype hint")
	cmd.Flags().IntVar(&top, "top", 5, "Number of candidates to list, 0 for all")

	return cmd
}
