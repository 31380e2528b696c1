package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/blockkit/block"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig is returned when a config fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedFormat is returned for an unknown config file extension.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// PairSpec is a delimiter pair as written in a config file. Each marker must
// be exactly one character.
type PairSpec struct {
	Open  string `json:"open" yaml:"open" toml:"open" jsonschema:"required,minLength=1,maxLength=1,description=Open marker (one character)"`
	Close string `json:"close" yaml:"close" toml:"close" jsonschema:"required,minLength=1,maxLength=1,description=Close marker (one character)"`
}

// Config holds blockkit settings.
type Config struct {
	// Delimiters are the pairs to recognize, in priority order.
	// Default: braces only.
	Delimiters []PairSpec `json:"delimiters" yaml:"delimiters" toml:"delimiters" jsonschema:"description=Delimiter pairs in priority order"`

	// Format is the output format: debug, tree, json, or yaml.
	// Default: "debug".
	Format string `json:"format" yaml:"format" toml:"format" jsonschema:"enum=debug,enum=tree,enum=json,enum=yaml"`

	// MaxText elides text spans longer than this many runes in tree output.
	// 0 disables elision.
	MaxText int `json:"max_text" yaml:"max_text" toml:"max_text" jsonschema:"minimum=0"`

	// Color selects ANSI colour for tree output: auto, always, or never.
	// Default: "auto".
	Color string `json:"color" yaml:"color" toml:"color" jsonschema:"enum=auto,enum=always,enum=never"`
}

// DefaultConfig returns a Config that recognizes braces and prints the debug
// form.
func DefaultConfig() Config {
	return Config{
		Delimiters: []PairSpec{{Open: "{", Close: "}"}},
		Format:     "debug",
		Color:      ColorAuto,
	}
}

// Load reads a config file on top of the defaults. The format is chosen by
// extension: .yaml/.yml, .toml, or .json.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the BLOCKKIT_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - BLOCKKIT_DELIMITERS: pairs as adjacent markers, comma separated ("{},()")
//   - BLOCKKIT_FORMAT: output format
//   - BLOCKKIT_MAX_TEXT: elision length for tree output
//   - BLOCKKIT_COLOR: auto, always, or never
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("BLOCKKIT_DELIMITERS"); v != "" {
		pairs, err := ParsePairs(v)
		if err != nil {
			return fmt.Errorf("BLOCKKIT_DELIMITERS: %w", err)
		}
		c.Delimiters = pairs
	}
	if v := os.Getenv("BLOCKKIT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("BLOCKKIT_MAX_TEXT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOCKKIT_MAX_TEXT: %w", err)
		}
		c.MaxText = n
	}
	if v := os.Getenv("BLOCKKIT_COLOR"); v != "" {
		c.Color = v
	}
	return nil
}

// ParsePairs parses a comma separated list of two-character pairs such as
// "{},(),[]". Whitespace around entries is ignored.
func ParsePairs(s string) ([]PairSpec, error) {
	var pairs []PairSpec
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		runes := []rune(entry)
		if len(runes) != 2 {
			return nil, fmt.Errorf("%w: pair %q must be exactly two characters", ErrInvalidConfig, entry)
		}
		pairs = append(pairs, PairSpec{Open: string(runes[0]), Close: string(runes[1])})
	}
	return pairs, nil
}

// Validate reports problems the separator would otherwise treat as
// undefined: markers that are not a single character, a pair whose open and
// close are equal, and the same open marker listed twice.
func (c *Config) Validate() error {
	var errs []error

	seen := make(map[string]int, len(c.Delimiters))
	for i, p := range c.Delimiters {
		if utf8.RuneCountInString(p.Open) != 1 {
			errs = append(errs, fmt.Errorf("delimiters[%d]: open %q must be one character", i, p.Open))
		}
		if utf8.RuneCountInString(p.Close) != 1 {
			errs = append(errs, fmt.Errorf("delimiters[%d]: close %q must be one character", i, p.Close))
		}
		if p.Open == p.Close {
			errs = append(errs, fmt.Errorf("delimiters[%d]: open and close are both %q", i, p.Open))
		}
		if j, dup := seen[p.Open]; dup {
			errs = append(errs, fmt.Errorf("delimiters[%d]: open %q already used by delimiters[%d]", i, p.Open, j))
		} else {
			seen[p.Open] = i
		}
	}

	switch c.Format {
	case "", "debug", "tree", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("format %q is not one of debug, tree, json, yaml", c.Format))
	}

	if c.MaxText < 0 {
		errs = append(errs, fmt.Errorf("max_text must be >= 0, got %d", c.MaxText))
	}

	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color %q is not one of auto, always, never", c.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Table converts the configured delimiters to a block.Table. Call Validate
// first; entries with empty markers are skipped.
func (c *Config) Table() block.Table {
	table := make(block.Table, 0, len(c.Delimiters))
	for _, p := range c.Delimiters {
		if p.Open == "" || p.Close == "" {
			continue
		}
		open, _ := utf8.DecodeRuneInString(p.Open)
		closer, _ := utf8.DecodeRuneInString(p.Close)
		table = append(table, block.Pair{Open: open, Close: closer})
	}
	return table
}
