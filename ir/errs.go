package ir

import (
	"errors"
	"fmt"
)

var (
	ErrPath       = errors.New("path error")
	ErrOverflow   = errors.New("integer overflow")
	ErrNotInteger = errors.New("not an integer literal")
)

type NumberErrorKind int

const (
	NotInteger NumberErrorKind = iota
	Overflow
)

// NumberError reports a number that cannot be projected exactly onto
// the Go type named by Target.
type NumberError struct {
	Kind   NumberErrorKind
	Number Number
	Target string
}

func (e *NumberError) Error() string {
	switch e.Kind {
	case Overflow:
		return fmt.Sprintf("%s: %s does not fit %s", ErrOverflow, e.Number, e.Target)
	default:
		return fmt.Sprintf("%s: %s as %s", ErrNotInteger, e.Number, e.Target)
	}
}

func (e *NumberError) Unwrap() error {
	if e.Kind == Overflow {
		return ErrOverflow
	}
	return ErrNotInteger
}
