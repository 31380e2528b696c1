package split

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/blockkit/block"
)

// Split returns the non-empty runs of s between separator runes.
// With no separators the whole string is returned as one field, or nothing
// if s is empty.
func Split(s string, seps ...rune) []string {
	fields := Fields(s, seps...)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Value)
	}
	return out
}

// Fields is like Split but returns each field as a span with its byte
// offsets in s.
func Fields(s string, seps ...rune) []block.Text {
	var fields []block.Text
	start := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && width == 1) && containsRune(seps, r) {
			if i > start {
				fields = append(fields, block.Text{Start: start, End: i, Value: s[start:i]})
			}
			start = i + width
		}
		i += width
	}
	if start < len(s) {
		fields = append(fields, block.Text{Start: start, End: len(s), Value: s[start:]})
	}
	return fields
}

// ParseSeparators turns a separator spec such as `,;\t\n ` into runes.
// The escapes \t, \n, \r, \s (space) and \\ are recognized.
func ParseSeparators(spec string) []rune {
	replacer := strings.NewReplacer(`\\`, `\`, `\t`, "\t", `\n`, "\n", `\r`, "\r", `\s`, " ")
	unescaped := replacer.Replace(spec)

	var seps []rune
	for _, r := range unescaped {
		if !containsRune(seps, r) {
			seps = append(seps, r)
		}
	}
	return seps
}

func containsRune(runes []rune, r rune) bool {
	for _, c := range runes {
		if c == r {
			return true
		}
	}
	return false
}
