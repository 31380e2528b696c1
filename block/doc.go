// Package block separates text into a tree of nested blocks delimited by
// matched pairs of marker characters.
//
// The parser is a structural tokenizer: it tracks delimiter nesting only and
// has no notion of strings, comments, or escaping. Every byte of the input
// ends up either in a Text span or as a marker of some nested Block, so the
// input can always be rebuilt from the tree.
//
// Core types:
//   - Pair: an (open, close) marker pair
//   - Table: the ordered pairs a Separator recognizes
//   - Block: an ordered sequence of Content
//   - Content: either a Text span or a nested *Block
//
// Example usage:
//
//	root, err := block.Separate(`A;{B} C() {D}`, block.Table{block.Braces})
//	if errors.Is(err, block.ErrUnterminatedBlock) {
//	    // an open marker was never closed
//	}
//
//	for _, c := range root.Content {
//	    switch c := c.(type) {
//	    case block.Text:
//	        fmt.Printf("text %q\n", c.Value)
//	    case *block.Block:
//	        fmt.Printf("block with %d items\n", len(c.Content))
//	    }
//	}
//
// Matching is strictly left to right with no lookahead. Inside a block only
// that block's own close marker ends it; the close marker of a different pair
// is ordinary text.
package block
