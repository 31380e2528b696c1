package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/blockkit/block"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatDebug Format = "debug"
	FormatTree  Format = "tree"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatDebug, FormatTree, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name. The empty string selects debug.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatDebug, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes root to w in the given format.
func Render(w io.Writer, root *block.Block, format Format, opts ...Option) error {
	switch format {
	case FormatDebug, "":
		_, err := io.WriteString(w, Debug(root)+"\n")
		return err
	case FormatTree:
		return Tree(w, root, opts...)
	case FormatJSON:
		return JSON(w, root)
	case FormatYAML:
		return YAML(w, root)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Debug returns the bracketed form of root: each block is its items joined
// by ", " inside square brackets and each text span is its raw characters.
func Debug(root *block.Block) string {
	var sb strings.Builder
	sb.WriteByte('[')
	root.Traverse(func(c block.Content, _, index int) bool {
		if index > 0 {
			sb.WriteString(", ")
		}
		switch c := c.(type) {
		case block.Text:
			sb.WriteString(c.Value)
		case *block.Block:
			sb.WriteByte('[')
		}
		return true
	}, func(*block.Block, int) {
		sb.WriteByte(']')
	})
	sb.WriteByte(']')
	return sb.String()
}
