package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/blockkit/block"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, block.Table{block.Braces}, cfg.Table())
	assert.Equal(t, "debug", cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Zero(t, cfg.MaxText)
}

func TestLoad(t *testing.T) {
	want := block.Table{block.Braces, block.Parens}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "blockkit.yaml",
			content: `delimiters:
  - open: "{"
    close: "}"
  - open: "("
    close: ")"
format: tree
max_text: 40
`,
		},
		{
			name: "yml extension",
			file: "blockkit.yml",
			content: `delimiters: [{open: "{", close: "}"}, {open: "(", close: ")"}]
format: tree
max_text: 40
`,
		},
		{
			name: "toml",
			file: "blockkit.toml",
			content: `format = "tree"
max_text = 40

[[delimiters]]
open = "{"
close = "}"

[[delimiters]]
open = "("
close = ")"
`,
		},
		{
			name:    "json",
			file:    "blockkit.json",
			content: `{"delimiters":[{"open":"{","close":"}"},{"open":"(","close":")"}],"format":"tree","max_text":40}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, want, cfg.Table())
			assert.Equal(t, "tree", cfg.Format)
			assert.Equal(t, 40, cfg.MaxText)
			assert.Equal(t, ColorAuto, cfg.Color, "unset fields keep defaults")
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "blockkit.ini", "format=tree"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(writeFile(t, "bad.yaml", "delimiters: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOCKKIT_DELIMITERS", "{}, [] ,()")
	t.Setenv("BLOCKKIT_FORMAT", "json")
	t.Setenv("BLOCKKIT_MAX_TEXT", "12")
	t.Setenv("BLOCKKIT_COLOR", "never")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, block.Table{block.Braces, block.Brackets, block.Parens}, cfg.Table())
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 12, cfg.MaxText)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("BLOCKKIT_MAX_TEXT", "lots")
	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadFromEnv())

	t.Setenv("BLOCKKIT_MAX_TEXT", "")
	t.Setenv("BLOCKKIT_DELIMITERS", "{")
	cfg = DefaultConfig()
	err := cfg.LoadFromEnv()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs("«»,<>")
	require.NoError(t, err)
	assert.Equal(t, []PairSpec{{Open: "«", Close: "»"}, {Open: "<", Close: ">"}}, pairs)

	pairs, err = ParsePairs("")
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = ParsePairs("{}}")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:    "multi-character marker",
			modify:  func(c *Config) { c.Delimiters = []PairSpec{{Open: "{{", Close: "}}"}} },
			wantErr: "must be one character",
		},
		{
			name:    "empty marker",
			modify:  func(c *Config) { c.Delimiters = []PairSpec{{Open: "", Close: ")"}} },
			wantErr: "must be one character",
		},
		{
			name:    "open equals close",
			modify:  func(c *Config) { c.Delimiters = []PairSpec{{Open: "|", Close: "|"}} },
			wantErr: "open and close are both",
		},
		{
			name: "duplicate open",
			modify: func(c *Config) {
				c.Delimiters = []PairSpec{{Open: "{", Close: "}"}, {Open: "{", Close: "]"}}
			},
			wantErr: "already used by delimiters[0]",
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Format = "xml" },
			wantErr: "format \"xml\"",
		},
		{
			name:    "negative max text",
			modify:  func(c *Config) { c.MaxText = -1 },
			wantErr: "max_text",
		},
		{
			name:    "unknown color",
			modify:  func(c *Config) { c.Color = "sometimes" },
			wantErr: "color \"sometimes\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTable_SkipsEmptyMarkers(t *testing.T) {
	cfg := Config{Delimiters: []PairSpec{{Open: "", Close: ")"}, {Open: "[", Close: "]"}}}
	assert.Equal(t, block.Table{block.Brackets}, cfg.Table())
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, "blockkit configuration", s.Title)
	assert.Equal(t, "object", s.Type)

	for _, name := range []string{"delimiters", "format", "max_text", "color"} {
		_, ok := s.Properties.Get(name)
		assert.True(t, ok, "missing property %s", name)
	}

	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "properties")
}

func TestSchema_MarkersAreOneCharacter(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded struct {
		Properties struct {
			Delimiters struct {
				Items struct {
					Properties map[string]struct {
						MinLength int `json:"minLength"`
						MaxLength int `json:"maxLength"`
					} `json:"properties"`
				} `json:"items"`
			} `json:"delimiters"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	markers := decoded.Properties.Delimiters.Items.Properties
	for _, name := range []string{"open", "close"} {
		marker, ok := markers[name]
		require.True(t, ok, "missing marker property %s", name)
		assert.Equal(t, 1, marker.MinLength, name)
		assert.Equal(t, 1, marker.MaxLength, name)
	}
}
