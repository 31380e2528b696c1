package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/randalmurphal/blockkit/block"
)

// DefaultEllipsis replaces the middle of elided text spans.
const DefaultEllipsis = "…"

// treeOptions controls Tree output.
type treeOptions struct {
	color    bool
	maxText  int
	offsets  bool
	indent   string
	ellipsis string
}

// Option configures Tree output. Other formats ignore options.
type Option func(*treeOptions)

// WithColor enables or disables ANSI colour regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(o *treeOptions) { o.color = enabled }
}

// WithMaxText elides the middle of text spans longer than n runes.
// n <= 0 disables elision.
func WithMaxText(n int) Option {
	return func(o *treeOptions) { o.maxText = n }
}

// WithOffsets prints the byte range of every node.
func WithOffsets(enabled bool) Option {
	return func(o *treeOptions) { o.offsets = enabled }
}

// WithIndent sets the per-level indent. Default is two spaces.
func WithIndent(indent string) Option {
	return func(o *treeOptions) { o.indent = indent }
}

func defaultTreeOptions() treeOptions {
	return treeOptions{
		offsets:  true,
		indent:   "  ",
		ellipsis: DefaultEllipsis,
	}
}

type palette struct {
	marker *color.Color
	text   *color.Color
	span   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		marker: color.New(color.FgCyan, color.Bold),
		text:   color.New(color.FgGreen),
		span:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.marker, p.text, p.span} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Tree writes root as an indented outline, one node per line:
//
//	root [0,13)
//	  text "A;" [0,2)
//	  block {} [2,5)
//	    text "B" [3,4)
func Tree(w io.Writer, root *block.Block, opts ...Option) error {
	o := defaultTreeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := newPalette(o.color)

	var sb strings.Builder
	sb.WriteString(p.marker.Sprint("root"))
	writeSpan(&sb, p, o, root.Start, root.End)
	sb.WriteByte('\n')

	root.Walk(func(c block.Content, depth int) bool {
		sb.WriteString(strings.Repeat(o.indent, depth))
		switch c := c.(type) {
		case block.Text:
			sb.WriteString("text ")
			sb.WriteString(p.text.Sprint(strconv.Quote(elide(c.Value, o.maxText, o.ellipsis))))
		case *block.Block:
			sb.WriteString("block ")
			sb.WriteString(p.marker.Sprint(c.Pair.String()))
		}
		start, end := c.Span()
		writeSpan(&sb, p, o, start, end)
		sb.WriteByte('\n')
		return true
	})

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSpan(sb *strings.Builder, p palette, o treeOptions, start, end int) {
	if !o.offsets {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(p.span.Sprint(fmt.Sprintf("[%d,%d)", start, end)))
}

// elide keeps the first and last parts of s so that at most limit runes of
// the original remain, joined by ellipsis.
func elide(s string, limit int, ellipsis string) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	head := (limit + 1) / 2
	tail := limit - head
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}
