// Command sim loads an automaton from its text form and prints whether it
// accepts an input string, one decimal symbol per character.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/geange/fsa"
	"github.com/spf13/cobra"
)

type simOptions struct {
	determinize bool
	minimize    bool
	out         string
}

func newSimCmd() *cobra.Command {
	opts := &simOptions{}
	cmd := &cobra.Command{
		Use:   "sim <automaton_file> <input_string>",
		Short: "run an automaton on an input string",
		Long: `Loads the automaton stored in automaton_file and prints true if it
accepts input_string, false otherwise. Every character of input_string is
read as one decimal symbol.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point.
			cmd.SilenceUsage = true
			return runSim(cmd, opts, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&opts.determinize, "determinize", false,
		"determinize and normalize the automaton before simulating")
	cmd.Flags().BoolVar(&opts.minimize, "minimize", false,
		"determinize, complete and minimize the automaton before simulating")
	cmd.Flags().StringVar(&opts.out, "out", "",
		"write the transformed automaton to this file")
	return cmd
}

func runSim(cmd *cobra.Command, opts *simOptions, path, input string) error {
	a, err := fsa.ReadFile(path)
	if err != nil {
		return err
	}

	if opts.determinize || opts.minimize {
		if err := a.Determinize(); err != nil {
			return err
		}
		if err := a.Normalize(); err != nil {
			return err
		}
	}
	if opts.minimize {
		if err := a.Totalize(); err != nil {
			return err
		}
		if err := a.Minimize(); err != nil {
			return err
		}
	}

	if opts.out != "" {
		if err := a.WriteFile(opts.out); err != nil {
			return errors.Wrap(err, "write transformed automaton")
		}
	}

	accepted, err := a.AcceptsString(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(accepted))
	return err
}

func main() {
	if err := newSimCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
