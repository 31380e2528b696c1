package block

import (
	"errors"
	"fmt"
)

// ErrUnterminatedBlock is returned when an open marker has no matching close
// marker before the end of the input. It is the only error the separator
// produces.
var ErrUnterminatedBlock = errors.New("unterminated block")

// Error describes where separation failed.
type Error struct {
	Op     string // Operation that failed ("separate")
	Offset int    // Byte offset of the innermost unclosed open marker
	Pair   Pair   // Pair whose close marker was never found
	Depth  int    // Nesting depth of the unclosed block, 1 for top level
	Err    error  // Underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %q at offset %d (depth %d) has no matching %q",
		e.Op, e.Err, e.Pair.Open, e.Offset, e.Depth, e.Pair.Close)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnterminated reports whether err is an unterminated block error.
func IsUnterminated(err error) bool {
	return errors.Is(err, ErrUnterminatedBlock)
}
