package parse

import (
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/token"
)

// Input is the set of buffer types the grammar runs over.
type Input interface {
	~[]byte | ~string
}

// Cursor is the parse state threaded through every rule: the input, the
// current offset, the container depth and the furthest failure seen.
//
// A rule either succeeds and advances the cursor, or fails and leaves the
// offset where it found it.
type Cursor[In Input] struct {
	src      In
	i        int
	depth    int
	failAt   int
	expected string
	opts     *parseOpts
}

func NewCursor[In Input](src In, opts ...ParseOption) *Cursor[In] {
	return &Cursor[In]{src: src, failAt: -1, opts: newParseOpts(opts)}
}

// Offset returns the current byte offset.
func (c *Cursor[In]) Offset() int { return c.i }

func (c *Cursor[In]) AtEnd() bool { return c.i >= len(c.src) }

func (c *Cursor[In]) peek() (byte, bool) {
	if c.i >= len(c.src) {
		return 0, false
	}
	return c.src[c.i], true
}

func (c *Cursor[In]) consume(b byte) bool {
	if c.i < len(c.src) && c.src[c.i] == b {
		c.i++
		return true
	}
	return false
}

// noMatch records a failure at the current offset and returns ErrNoMatch.
// Later failures at the same offset replace earlier ones, so an enclosing
// rule's description wins over its alternatives'.
func (c *Cursor[In]) noMatch(want string) error {
	return c.noMatchAt(c.i, want)
}

func (c *Cursor[In]) noMatchAt(off int, want string) error {
	if off >= c.failAt {
		c.failAt = off
		c.expected = want
	}
	return ErrNoMatch
}

// enter is called just past an opening bracket.
func (c *Cursor[In]) enter() error {
	c.depth++
	if c.opts.maxDepth > 0 && c.depth > c.opts.maxDepth {
		return &DepthError{Offset: c.i - 1, Max: c.opts.maxDepth}
	}
	return nil
}

func (c *Cursor[In]) leave() { c.depth-- }

func (c *Cursor[In]) mark(n *ir.Node, start int) {
	if c.opts.positions != nil {
		c.opts.positions[n] = Span{Start: start, End: c.i}
	}
}

func (c *Cursor[In]) markKey(v *ir.Node, start, end int) {
	if c.opts.positions == nil {
		return
	}
	sp := c.opts.positions[v]
	sp.KeyStart, sp.KeyEnd = start, end
	c.opts.positions[v] = sp
}

// Err converts a rule failure into the error reported to callers.
// ErrNoMatch becomes a *SyntaxError at the furthest failure; other errors
// are returned unchanged.
func (c *Cursor[In]) Err(err error) error {
	if err != ErrNoMatch {
		return err
	}
	off, want := c.failAt, c.expected
	if off < 0 {
		off, want = c.i, "value"
	}
	return c.syntaxError(off, want)
}

func (c *Cursor[In]) syntaxError(off int, want string) *SyntaxError {
	found := "end of input"
	if off < len(c.src) {
		found = describeByte(c.src[off])
	}
	line, col := token.NewPosDoc([]byte(c.src)).LineCol(off)
	return &SyntaxError{
		Offset:   off,
		Line:     line,
		Col:      col,
		Expected: want,
		Found:    found,
	}
}

// Try runs rule and restores the cursor offset if it fails.
func Try[In Input, T any](c *Cursor[In], rule func(*Cursor[In]) (T, error)) (T, error) {
	start := c.i
	v, err := rule(c)
	if err != nil {
		c.i = start
	}
	return v, err
}
