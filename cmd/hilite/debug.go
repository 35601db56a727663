// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/lexers"
	"gitlab.com/fisherprime/hilite/registry"
	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

func newCmdDebug(a *app) *cobra.Command {
	var (
		lexerName string
		coalesce  bool
	)

	cmd := &cobra.Command{
		Use:   "debug <file>",
		Short: "Dump the tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return
			}

			var (
				def     *lexer.Definition
				options types.Options
			)
			if lexerName != "" {
				if def, options, err = a.reg.FindFancy(lexerName); err != nil {
					return
				}
			} else {
				var ok bool
				if def, ok = a.reg.Best(registry.Hints{Filename: args[0], Source: source}); !ok {
					def = lexers.PlainText
				}
			}
			a.logger.WithField("tag", def.Tag()).Debug("lexing")

			l := lexer.New(def, lexer.WithLogger(a.logger), lexer.WithDebug(a.verbose), lexer.WithOptions(options))
			tokens := l.Tokenize(source)
			if coalesce {
				tokens = token.Coalesce(tokens)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 3, ' ', 0)
			for _, tok := range tokens {
				fmt.Fprintf(tw, "%s\t%s\t%q\n", tok.Kind, tok.Kind.Short(), tok.Value)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&lexerName, "lexer", "l", "", `Lexer to use as "tag?key=value", guessed when empty`)
	cmd.Flags().BoolVar(&coalesce, "coalesce", false, "Merge adjacent tokens of the same kind")

	return cmd
}
