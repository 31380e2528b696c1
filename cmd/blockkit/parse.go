package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/blockkit/render"
)

type parseOptions struct {
	format  string
	maxText int
	offsets bool
	watch   bool
}

func newParseCommand(g *globalOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Separate a file into blocks and print the tree",
		Long: `Separate a file into blocks and print the tree.

FILE may be "-" to read standard input. The exit status is non-zero if any
open marker is left without its close marker.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				g.cfg.Format = opts.format
			}
			if cmd.Flags().Changed("max-text") {
				g.cfg.MaxText = opts.maxText
			}
			format, err := render.ParseFormat(g.cfg.Format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			run := func() error {
				return parseAndRender(cmd, g, opts, args[0], format, out)
			}

			if opts.watch {
				if args[0] == "-" {
					return fmt.Errorf("--watch needs a file, not stdin")
				}
				return watchFile(cmd.Context(), args[0], run)
			}
			return run()
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: debug, tree, json, yaml")
	cmd.Flags().IntVar(&opts.maxText, "max-text", 0, "elide text longer than this many runes in tree output")
	cmd.Flags().BoolVar(&opts.offsets, "offsets", true, "show byte offsets in tree output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-parse whenever the file is written")

	return cmd
}

func parseAndRender(cmd *cobra.Command, g *globalOptions, opts *parseOptions, name string, format render.Format, out io.Writer) error {
	input, err := readInput(cmd, name)
	if err != nil {
		return err
	}

	root, err := g.separator().Separate(input)
	if err != nil {
		slog.Debug("separate failed", slog.String("file", name), slog.Any("error", err))
		return fmt.Errorf("%s: %w", name, err)
	}
	if slog.Default().Enabled(cmd.Context(), slog.LevelDebug) {
		slog.Debug("separated",
			slog.String("file", name),
			slog.Int("bytes", len(input)),
			slog.Int("depth", root.Depth()))
	}

	return render.Render(out, root, format,
		render.WithColor(g.useColor(out)),
		render.WithMaxText(g.cfg.MaxText),
		render.WithOffsets(opts.offsets),
	)
}
