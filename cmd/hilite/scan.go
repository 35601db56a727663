// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hilite/batch"
	"gitlab.com/fisherprime/hilite/registry"
)

func newCmdScan(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Lex many files concurrently, reporting the chosen lexer & token count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]batch.Job, 0, len(args))
			for _, path := range args {
				source, err := readSource(cmd, path)
				if err != nil {
					return err
				}
				jobs = append(jobs, batch.Job{Name: path, Source: source, Hints: registry.Hints{Filename: path}})
			}

			results, err := batch.Highlight(cmd.Context(), a.reg, jobs,
				batch.WithLogger(a.logger), batch.WithWorkers(workers), batch.WithCoalesce(true))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "FILE\tLEXER\tTOKENS")
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(tw, "%s\t-\t%v\n", res.Job.Name, res.Err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", res.Job.Name, res.Definition.Tag(), len(res.Tokens))
			}
			if flushErr := tw.Flush(); flushErr != nil {
				return flushErr
			}

			return err
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker pool size, defaults to GOMAXPROCS")

	return cmd
}
