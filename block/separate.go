package block

import "unicode/utf8"

// Separator splits text into blocks using a delimiter table.
// A Separator holds no per-call state and is safe for concurrent use.
type Separator struct {
	table Table
}

// Option configures a Separator.
type Option func(*Separator)

// WithTable sets the delimiter pairs to recognize. A nil or empty table
// recognizes nothing, so the whole input becomes a single Text span.
func WithTable(t Table) Option {
	return func(s *Separator) { s.table = t }
}

// NewSeparator creates a separator. Without options it uses DefaultTable.
func NewSeparator(opts ...Option) *Separator {
	s := &Separator{table: DefaultTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the separator's delimiter table.
func (s *Separator) Table() Table {
	return s.table
}

// frame is a block that has been opened but not yet closed.
type frame struct {
	block      *Block
	flushStart int
}

// Separate scans input once and returns the root block.
//
// Each open marker starts a nested block that ends at the first occurrence of
// its own close marker at the same nesting level. Open frames are kept on an
// explicit stack, so deeply nested input does not grow the call stack.
//
// If any block is left open at the end of the input, Separate returns an
// *Error wrapping ErrUnterminatedBlock and no tree.
func (s *Separator) Separate(input string) (*Block, error) {
	root := &Block{Start: 0, End: len(input)}
	stack := []frame{{block: root}}

	for i := 0; i < len(input); {
		r, width := utf8.DecodeRuneInString(input[i:])
		next := i + width

		if r == utf8.RuneError && width == 1 {
			// Invalid UTF-8 byte: never a marker, even for a U+FFFD pair.
			i = next
			continue
		}

		top := &stack[len(stack)-1]

		if len(stack) > 1 && r == top.block.Pair.Close {
			top.block.flush(input, top.flushStart, i)
			top.block.End = next
			closed := top.block

			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.block.Content = append(parent.block.Content, closed)
			parent.flushStart = next
		} else if p, ok := s.table.Open(r); ok {
			top.block.flush(input, top.flushStart, i)
			stack = append(stack, frame{
				block:      &Block{Pair: p, Start: i},
				flushStart: next,
			})
		}

		i = next
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1].block
		return nil, &Error{
			Op:     "separate",
			Offset: open.Start,
			Pair:   open.Pair,
			Depth:  len(stack) - 1,
			Err:    ErrUnterminatedBlock,
		}
	}

	root.flush(input, stack[0].flushStart, len(input))
	return root, nil
}

// Separate is a convenience function that separates input with the given
// table.
func Separate(input string, table Table) (*Block, error) {
	return NewSeparator(WithTable(table)).Separate(input)
}
