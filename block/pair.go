package block

// Pair is an open marker and the close marker that ends the block it starts.
type Pair struct {
	Open  rune `json:"open" yaml:"open"`
	Close rune `json:"close" yaml:"close"`
}

// Common pairs.
var (
	Braces   = Pair{Open: '{', Close: '}'}
	Parens   = Pair{Open: '(', Close: ')'}
	Brackets = Pair{Open: '[', Close: ']'}
	Angles   = Pair{Open: '<', Close: '>'}
)

// IsZero reports whether p is the zero Pair, used for the root block.
func (p Pair) IsZero() bool {
	return p == Pair{}
}

// String returns the two markers side by side, e.g. "{}".
func (p Pair) String() string {
	if p.IsZero() {
		return ""
	}
	return string([]rune{p.Open, p.Close})
}

// Table is an ordered list of pairs. At each position the pairs are tested in
// order and the first whose open marker matches wins.
//
// Markers are compared against decoded runes. A byte that is not valid UTF-8
// is always plain text, even when a pair uses U+FFFD as a marker.
//
// A Table is not validated. Duplicate open markers, open == close, and
// overlapping pairs are accepted, with first-match-wins as the only rule.
type Table []Pair

// DefaultTable recognizes braces only.
var DefaultTable = Table{Braces}

// Open returns the first pair whose open marker is r.
func (t Table) Open(r rune) (Pair, bool) {
	for _, p := range t {
		if p.Open == r {
			return p, true
		}
	}
	return Pair{}, false
}
