// SPDX-License-Identifier: MIT

// Command hilite lists, guesses & debugs the built-in lexers.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/hilite/lexers"
	"gitlab.com/fisherprime/hilite/registry"
)

type (
	// app carries the state shared by the sub-commands.
	app struct {
		logger  *logrus.Logger
		reg     *registry.Registry
		verbose bool
	}
)

// stdinPath reads the source from standard input.
const stdinPath = "-"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:           "hilite",
		Short:         "Tokenize source text for syntax highlighting",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.logger.SetOutput(cmd.ErrOrStderr())
			if a.verbose {
				a.logger.SetLevel(logrus.DebugLevel)
			}

			a.reg, err = lexers.NewRegistry(registry.WithLogger(a.logger))
			return
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level, tracing every scan")

	cmd.AddCommand(
		newCmdList(a),
		newCmdGuess(a),
		newCmdDebug(a),
		newCmdScan(a),
		newCmdKinds(),
	)

	return cmd
}

// readSource reads a file, or standard input for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read (%s): %w", path, err)
	}

	return string(data), nil
}
