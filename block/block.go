package block

import "strings"

// Content is one element of a Block: either a Text span or a nested *Block.
type Content interface {
	// Span returns the byte range [start, end) the element covers in the
	// input. For a nested block the range includes both markers.
	Span() (start, end int)

	isContent()
}

// Text is a contiguous run of input bytes outside any nested block.
// Value is a substring of the input and shares its memory.
type Text struct {
	Start int
	End   int
	Value string
}

// Span implements Content.
func (t Text) Span() (int, int) { return t.Start, t.End }

func (Text) isContent() {}

// Len returns the length of the span in bytes.
func (t Text) Len() int { return t.End - t.Start }

// Block is an ordered sequence of text spans and nested blocks.
//
// The root block returned by Separate has a zero Pair and spans the whole
// input. A nested block spans from its open marker through its close marker;
// Content holds only what lies between them.
type Block struct {
	Pair    Pair
	Start   int
	End     int
	Content []Content
}

// Span implements Content.
func (b *Block) Span() (int, int) { return b.Start, b.End }

func (*Block) isContent() {}

// IsRoot reports whether b is the synthetic top-level block.
func (b *Block) IsRoot() bool { return b.Pair.IsZero() }

// Blocks returns the direct child blocks of b in order.
func (b *Block) Blocks() []*Block {
	var blocks []*Block
	for _, c := range b.Content {
		if inner, ok := c.(*Block); ok {
			blocks = append(blocks, inner)
		}
	}
	return blocks
}

// Texts returns the direct text spans of b in order.
func (b *Block) Texts() []Text {
	var texts []Text
	for _, c := range b.Content {
		if t, ok := c.(Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Walk visits every element below b in pre-order. Direct children of b are at
// depth 1. If fn returns false for a block, its children are skipped.
func (b *Block) Walk(fn func(c Content, depth int) bool) {
	b.Traverse(func(c Content, depth, _ int) bool { return fn(c, depth) }, nil)
}

// cursor is a block being traversed and the index of its next child.
type cursor struct {
	block *Block
	next  int
}

// Traverse visits every element below b in pre-order, like Walk, and also
// reports when a nested block has been fully visited.
//
// enter receives each element with its depth and its index in the parent's
// Content. If enter returns false for a block, its children are skipped and
// leave is not called for it. leave, if non-nil, receives each block whose
// children were visited, with that block's own depth. b itself is never
// passed to enter or leave.
//
// Pending blocks are kept on an explicit stack, so arbitrarily deep trees do
// not grow the call stack.
func (b *Block) Traverse(enter func(c Content, depth, index int) bool, leave func(b *Block, depth int)) {
	stack := []cursor{{block: b}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		depth := len(stack)

		if top.next == len(top.block.Content) {
			done := top.block
			stack = stack[:len(stack)-1]
			if leave != nil && len(stack) > 0 {
				leave(done, depth-1)
			}
			continue
		}

		index := top.next
		top.next++
		c := top.block.Content[index]
		if !enter(c, depth, index) {
			continue
		}
		if inner, ok := c.(*Block); ok {
			stack = append(stack, cursor{block: inner})
		}
	}
}

// Depth returns the deepest nesting level below b. A block with no nested
// blocks has depth 0.
func (b *Block) Depth() int {
	deepest := 0
	b.Walk(func(c Content, depth int) bool {
		if _, ok := c.(*Block); ok && depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// Reconstruct rebuilds the text b was parsed from, markers included.
// For the root block this is the original input.
func (b *Block) Reconstruct() string {
	var sb strings.Builder
	if !b.IsRoot() {
		sb.WriteRune(b.Pair.Open)
	}
	b.Traverse(func(c Content, _, _ int) bool {
		switch c := c.(type) {
		case Text:
			sb.WriteString(c.Value)
		case *Block:
			sb.WriteRune(c.Pair.Open)
		}
		return true
	}, func(inner *Block, _ int) {
		sb.WriteRune(inner.Pair.Close)
	})
	if !b.IsRoot() {
		sb.WriteRune(b.Pair.Close)
	}
	return sb.String()
}

// flush appends input[start:end] as a Text span unless it is empty.
func (b *Block) flush(input string, start, end int) {
	if start >= end {
		return
	}
	b.Content = append(b.Content, Text{Start: start, End: end, Value: input[start:end]})
}
