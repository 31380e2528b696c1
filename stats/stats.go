package stats

import (
	"unicode/utf8"

	"github.com/randalmurphal/blockkit/block"
)

// DefaultCharsPerToken is the default character-to-token ratio.
const DefaultCharsPerToken = 4.0

// Stats describes a block tree.
type Stats struct {
	Blocks       int            `json:"blocks" yaml:"blocks"`
	TextSpans    int            `json:"text_spans" yaml:"text_spans"`
	TextBytes    int            `json:"text_bytes" yaml:"text_bytes"`
	TextRunes    int            `json:"text_runes" yaml:"text_runes"`
	MaxDepth     int            `json:"max_depth" yaml:"max_depth"`
	Tokens       int            `json:"tokens" yaml:"tokens"`
	BlocksByPair map[string]int `json:"blocks_by_pair" yaml:"blocks_by_pair"`
}

// Counter estimates token counts for text.
type Counter interface {
	Count(text string) int
}

// EstimatingCounter uses a character-to-token ratio for estimation.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	CharsPerToken float64
}

// NewEstimatingCounter creates a counter. If charsPerToken is <= 0 the
// default ratio is used.
func NewEstimatingCounter(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{CharsPerToken: charsPerToken}
}

// Count estimates the number of tokens in text, rounded to nearest.
func (c *EstimatingCounter) Count(text string) int {
	runes := utf8.RuneCountInString(text)
	return int(float64(runes)/c.CharsPerToken + 0.5)
}

// Summarize computes statistics for root using the default counter.
func Summarize(root *block.Block) Stats {
	return SummarizeWith(root, NewEstimatingCounter(DefaultCharsPerToken))
}

// SummarizeWith computes statistics for root, estimating tokens with counter.
// Markers count toward Tokens; the root block itself is not counted in Blocks.
func SummarizeWith(root *block.Block, counter Counter) Stats {
	s := Stats{BlocksByPair: map[string]int{}}
	root.Walk(func(c block.Content, depth int) bool {
		switch c := c.(type) {
		case block.Text:
			s.TextSpans++
			s.TextBytes += c.Len()
			s.TextRunes += utf8.RuneCountInString(c.Value)
		case *block.Block:
			s.Blocks++
			s.BlocksByPair[c.Pair.String()]++
			if depth > s.MaxDepth {
				s.MaxDepth = depth
			}
		}
		return true
	})
	s.Tokens = counter.Count(root.Reconstruct())
	return s
}
