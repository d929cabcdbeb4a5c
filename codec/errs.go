package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jsonv/ir"
)

var (
	ErrDecode       = errors.New("decode error")
	ErrType         = fmt.Errorf("%w: type mismatch", ErrDecode)
	ErrShape        = fmt.Errorf("%w: unexpected shape", ErrDecode)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrDecode)
	ErrUndefinedKey = fmt.Errorf("%w: undefined key", ErrDecode)
	ErrLinting      = fmt.Errorf("%w: unused fields", ErrDecode)
)

// PathError records where in a document an error happened. Errors
// returned from decoding closures are wrapped at each array or object
// boundary, so Path is the full path from the decoded root.
type PathError struct {
	Path *ir.Path
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func wrapIndex(i int, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PathError); ok {
		return &PathError{Path: ir.IndexPath(i, pe.Path), Err: pe.Err}
	}
	return &PathError{Path: ir.IndexPath(i, nil), Err: err}
}

func wrapKey(k ir.Key, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PathError); ok {
		return &PathError{Path: ir.FieldPath(k, pe.Path), Err: pe.Err}
	}
	return &PathError{Path: ir.FieldPath(k, nil), Err: err}
}

// TypeError reports a node of the wrong kind, or a missing one when
// Actual is "missing".
type TypeError struct {
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrType, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error { return ErrType }

func typeError(expected string, n *ir.Node) *TypeError {
	if n == nil {
		return &TypeError{Expected: expected, Actual: "missing"}
	}
	return &TypeError{Expected: expected, Actual: n.Type.String()}
}

// ShapeError reports an array whose length violates a constraint.
// Expected is empty when the constraint has no description.
type ShapeError struct {
	Count    int
	Expected string
}

func (e *ShapeError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: array of length %d", ErrShape, e.Count)
	}
	return fmt.Sprintf("%s: array of length %d, expected %s", ErrShape, e.Count, e.Expected)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

type DuplicateKeyError struct {
	Key ir.Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q", ErrDuplicateKey, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

type UndefinedKeyError struct {
	Key ir.Key
}

func (e *UndefinedKeyError) Error() string {
	return fmt.Sprintf("%s %q", ErrUndefinedKey, e.Key)
}

func (e *UndefinedKeyError) Unwrap() error { return ErrUndefinedKey }

// LintingError lists the fields of an object that decoding did not
// consume, in document order.
type LintingError struct {
	Unused []ir.KeyVal
}

func (e *LintingError) Error() string {
	keys := make([]string, len(e.Unused))
	for i := range e.Unused {
		keys[i] = fmt.Sprintf("%q", e.Unused[i].Key)
	}
	return fmt.Sprintf("%s %s", ErrLinting, strings.Join(keys, ", "))
}

func (e *LintingError) Unwrap() error { return ErrLinting }
