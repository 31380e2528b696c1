package stats

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/blockkit/block"
)

func TestNewEstimatingCounter(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{name: "custom ratio", ratio: 3.0, expected: 3.0},
		{name: "zero ratio uses default", ratio: 0, expected: DefaultCharsPerToken},
		{name: "negative ratio uses default", ratio: -1, expected: DefaultCharsPerToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCounter(tt.ratio)
			assert.Equal(t, tt.expected, c.CharsPerToken)
		})
	}
}

func TestEstimatingCounter_Count(t *testing.T) {
	c := NewEstimatingCounter(DefaultCharsPerToken)

	assert.Equal(t, 0, c.Count(""))
	assert.Equal(t, 1, c.Count("abcd"))
	assert.Equal(t, 2, c.Count("abcdef"), "1.5 rounds up")
	assert.Equal(t, 1, c.Count("日本語の"), "runes, not bytes")
}

func TestSummarize(t *testing.T) {
	root, err := block.Separate("a{bc(d)}{}(e)", block.Table{block.Braces, block.Parens})
	require.NoError(t, err)

	s := Summarize(root)
	assert.Equal(t, 4, s.Blocks)
	assert.Equal(t, 4, s.TextSpans)
	assert.Equal(t, 5, s.TextBytes)
	assert.Equal(t, 5, s.TextRunes)
	assert.Equal(t, 2, s.MaxDepth)
	assert.Equal(t, map[string]int{"{}": 2, "()": 2}, s.BlocksByPair)
	assert.Equal(t, 3, s.Tokens)
}

func TestSummarize_Empty(t *testing.T) {
	root, err := block.Separate("", block.DefaultTable)
	require.NoError(t, err)

	s := Summarize(root)
	assert.Zero(t, s.Blocks)
	assert.Zero(t, s.TextSpans)
	assert.Zero(t, s.MaxDepth)
	assert.Zero(t, s.Tokens)
	assert.Empty(t, s.BlocksByPair)
}

type fixedCounter int

func (f fixedCounter) Count(string) int { return int(f) }

func TestSummarizeWith_CustomCounter(t *testing.T) {
	root, err := block.Separate("{x}", block.DefaultTable)
	require.NoError(t, err)

	s := SummarizeWith(root, fixedCounter(42))
	assert.Equal(t, 42, s.Tokens)
}

func TestSummarize_DeepNesting(t *testing.T) {
	const depth = 200000
	prev := debug.SetMaxStack(4 << 20)
	t.Cleanup(func() { debug.SetMaxStack(prev) })

	input := strings.Repeat("{", depth) + "abcd" + strings.Repeat("}", depth)
	root, err := block.Separate(input, block.DefaultTable)
	require.NoError(t, err)

	s := Summarize(root)
	assert.Equal(t, depth, s.Blocks)
	assert.Equal(t, depth, s.MaxDepth)
	assert.Equal(t, 1, s.TextSpans)
	assert.Equal(t, 4, s.TextBytes)
}
