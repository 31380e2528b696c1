// Package split cuts text on single-character separators.
//
// It has no notion of nesting and is independent of package block; use it
// for flat, comma- or whitespace-separated input.
//
//	split.Split("a, b,,c", ',', ' ')  // ["a" "b" "c"]
//
// A byte that is not valid UTF-8 never matches a separator, so every field
// is an exact substring of the input.
package split
