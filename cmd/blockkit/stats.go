package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/blockkit/render"
	"github.com/randalmurphal/blockkit/stats"
)

func newStatsCommand(g *globalOptions) *cobra.Command {
	var (
		format        string
		charsPerToken float64
	)

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print block counts, nesting depth and an estimated token count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			root, err := g.separator().Separate(input)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			s := stats.SummarizeWith(root, stats.NewEstimatingCounter(charsPerToken))
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				return render.EncodeJSON(out, s)
			case "yaml":
				return render.EncodeYAML(out, s)
			case "", "text":
				fmt.Fprintf(out, "blocks:     %d\n", s.Blocks)
				fmt.Fprintf(out, "max depth:  %d\n", s.MaxDepth)
				fmt.Fprintf(out, "text spans: %d\n", s.TextSpans)
				fmt.Fprintf(out, "text bytes: %d\n", s.TextBytes)
				fmt.Fprintf(out, "tokens:     ~%d\n", s.Tokens)
				pairs := make([]string, 0, len(s.BlocksByPair))
				for p := range s.BlocksByPair {
					pairs = append(pairs, p)
				}
				sort.Strings(pairs)
				for _, p := range pairs {
					fmt.Fprintf(out, "  %s: %d\n", p, s.BlocksByPair[p])
				}
				return nil
			default:
				return fmt.Errorf("unknown stats format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml")
	cmd.Flags().Float64Var(&charsPerToken, "chars-per-token", stats.DefaultCharsPerToken, "characters per token for the estimate")

	return cmd
}
