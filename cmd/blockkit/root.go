package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/blockkit/block"
	"github.com/randalmurphal/blockkit/config"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
	delimiters string
	color      string
	verbose    bool

	cfg config.Config
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "blockkit",
		Short:         "Separate text into nested delimiter blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml, .toml, .json)")
	flags.StringVarP(&opts.delimiters, "delimiters", "d", "", `delimiter pairs, e.g. "{},()"`)
	flags.StringVar(&opts.color, "color", "", "colour tree output: auto, always, never")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newParseCommand(opts))
	root.AddCommand(newSplitCommand(opts))
	root.AddCommand(newStatsCommand(opts))
	root.AddCommand(newSchemaCommand())

	return root
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// resolveConfig layers defaults, the config file, BLOCKKIT_ environment
// variables, and explicit flags, in that order.
func (o *globalOptions) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		slog.Debug("loaded config", slog.String("path", o.configPath))
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("delimiters") {
		pairs, err := config.ParsePairs(o.delimiters)
		if err != nil {
			return cfg, fmt.Errorf("--delimiters: %w", err)
		}
		cfg.Delimiters = pairs
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = o.color
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// separator builds a separator for the resolved delimiter table.
func (o *globalOptions) separator() *block.Separator {
	return block.NewSeparator(block.WithTable(o.cfg.Table()))
}

// useColor decides whether output written to w should be coloured.
func (o *globalOptions) useColor(w io.Writer) bool {
	switch o.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readInput reads the named file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
