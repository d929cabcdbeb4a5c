package parse

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrParse         = errors.New("parse error")
	ErrInvalidScalar = fmt.Errorf("%w: invalid unicode scalar", ErrParse)
	ErrDepth         = fmt.Errorf("%w: nesting too deep", ErrParse)

	// ErrNoMatch is returned by a rule that does not match at the cursor.
	// Alternation treats it as recoverable; any other error aborts the
	// parse.
	ErrNoMatch = errors.New("no match")
)

// SyntaxError reports the furthest point the grammar reached before
// failing. Line and Col are 0-based.
type SyntaxError struct {
	Offset   int
	Line     int
	Col      int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s at offset %d (line=%d, col=%d)",
		ErrParse, e.Expected, e.Found, e.Offset, e.Line, e.Col)
}

func (e *SyntaxError) Unwrap() error { return ErrParse }

// InvalidScalarError reports a \u escape that denotes a lone surrogate.
type InvalidScalarError struct {
	Offset int
	Value  uint16
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("%s \\u%04X at offset %d", ErrInvalidScalar, e.Value, e.Offset)
}

func (e *InvalidScalarError) Unwrap() error { return ErrInvalidScalar }

type DepthError struct {
	Offset int
	Max    int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: limit %d exceeded at offset %d", ErrDepth, e.Max, e.Offset)
}

func (e *DepthError) Unwrap() error { return ErrDepth }

// ErrorOffset returns the byte offset carried by an error from this
// package.
func ErrorOffset(err error) (int, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset, true
	}
	var ie *InvalidScalarError
	if errors.As(err, &ie) {
		return ie.Offset, true
	}
	var de *DepthError
	if errors.As(err, &de) {
		return de.Offset, true
	}
	return 0, false
}

func describeByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf("byte 0x%02x", c)
	}
	return strconv.QuoteRune(rune(c))
}
