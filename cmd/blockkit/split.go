package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/blockkit/split"
)

func newSplitCommand(_ *globalOptions) *cobra.Command {
	var (
		seps    string
		offsets bool
	)

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split a file on single-character separators, one field per line",
		Long: `Split a file on single-character separators, one field per line.

Separators are given as a list of characters; \t, \n, \r, \s (space) and \\
are recognized. Empty fields are dropped. Delimiter pairs are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range split.Fields(input, split.ParseSeparators(seps)...) {
				if offsets {
					fmt.Fprintf(out, "%d\t%d\t%q\n", f.Start, f.End, f.Value)
					continue
				}
				fmt.Fprintln(out, f.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&seps, "sep", "s", `\s,\n`, "separator characters")
	cmd.Flags().BoolVar(&offsets, "offsets", false, "print start and end byte offsets with each field")

	return cmd
}
