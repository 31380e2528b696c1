package split

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		seps  []rune
		want  []string
	}{
		{
			name:  "space comma newline",
			input: "let a = 1,\nb",
			seps:  []rune{' ', ',', '\n'},
			want:  []string{"let", "a", "=", "1", "b"},
		},
		{
			name:  "consecutive separators drop empty fields",
			input: ",,a,,b,,",
			seps:  []rune{','},
			want:  []string{"a", "b"},
		},
		{
			name:  "no separators",
			input: "abc",
			seps:  nil,
			want:  []string{"abc"},
		},
		{
			name:  "empty input",
			input: "",
			seps:  []rune{','},
			want:  []string{},
		},
		{
			name:  "only separators",
			input: " , ",
			seps:  []rune{' ', ','},
			want:  []string{},
		},
		{
			name:  "multibyte separator",
			input: "a·b·c",
			seps:  []rune{'·'},
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input, tt.seps...))
		})
	}
}

func TestFields_Offsets(t *testing.T) {
	input := "ab, cd"
	fields := Fields(input, ',', ' ')
	require.Len(t, fields, 2)

	assert.Equal(t, 0, fields[0].Start)
	assert.Equal(t, 2, fields[0].End)
	assert.Equal(t, 4, fields[1].Start)
	assert.Equal(t, 6, fields[1].End)
	for _, f := range fields {
		assert.Equal(t, input[f.Start:f.End], f.Value)
	}
}

func TestParseSeparators(t *testing.T) {
	assert.Equal(t, []rune{',', ';'}, ParseSeparators(",;"))
	assert.Equal(t, []rune{'\t', '\n', ' '}, ParseSeparators(`\t\n\s`))
	assert.Equal(t, []rune{','}, ParseSeparators(",,,"))
	assert.Equal(t, []rune{'\\'}, ParseSeparators(`\\`))
	assert.Empty(t, ParseSeparators(""))
}

func TestSplit_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		seps  []rune
		want  []string
	}{
		{
			name:  "invalid byte is not a replacement separator",
			input: "a\xffb",
			seps:  []rune{utf8.RuneError},
			want:  []string{"a\xffb"},
		},
		{
			name:  "encoded replacement character separates",
			input: "a\uFFFDb",
			seps:  []rune{utf8.RuneError},
			want:  []string{"a", "b"},
		},
		{
			name:  "invalid byte kept inside a field",
			input: "x\xfe y",
			seps:  []rune{' '},
			want:  []string{"x\xfe", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input, tt.seps...))
			for _, f := range Fields(tt.input, tt.seps...) {
				assert.Equal(t, f.Value, tt.input[f.Start:f.End])
			}
		})
	}
}
