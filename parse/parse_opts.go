package parse

import "github.com/signadot/jsonv/ir"

// DefaultMaxDepth bounds container nesting unless ParseMaxDepth says
// otherwise.
const DefaultMaxDepth = 10000

type parseOpts struct {
	nonFinite bool
	fragment  bool
	maxDepth  int
	positions map[*ir.Node]Span
}

type ParseOption func(*parseOpts)

// ParseNonFinite accepts the literals inf, -inf, nan and snan wherever a
// number may appear.
func ParseNonFinite() ParseOption {
	return func(o *parseOpts) { o.nonFinite = true }
}

// ParseFragment accepts any value at the top level, not just arrays and
// objects.
func ParseFragment() ParseOption {
	return func(o *parseOpts) { o.fragment = true }
}

// ParseMaxDepth sets the container nesting limit. n <= 0 removes it.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Span is the byte range [Start, End) of a value in the parsed input. For
// object member values, KeyStart and KeyEnd hold the range of the quoted
// key; both are 0 otherwise.
type Span struct {
	Start, End       int
	KeyStart, KeyEnd int
}

// ParsePositions records the span of every parsed value in m.
func ParsePositions(m map[*ir.Node]Span) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
