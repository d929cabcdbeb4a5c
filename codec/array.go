package codec

import (
	"fmt"

	"github.com/signadot/jsonv/ir"
)

// Count requires exactly n elements.
func (a Array) Count(n int) error {
	if len(a) != n {
		return &ShapeError{Count: len(a), Expected: fmt.Sprintf("count %d", n)}
	}
	return nil
}

// MultipleOf requires the length to be a multiple of n.
func (a Array) MultipleOf(n int) error {
	if n <= 0 || len(a)%n != 0 {
		return &ShapeError{Count: len(a), Expected: fmt.Sprintf("multiple of %d", n)}
	}
	return nil
}

// Check requires pred to hold for the length. desc describes the
// constraint in errors and may be empty.
func (a Array) Check(desc string, pred func(int) bool) error {
	if !pred(len(a)) {
		return &ShapeError{Count: len(a), Expected: desc}
	}
	return nil
}

// Decode calls f on element i. Errors, including an index out of range,
// are annotated with the index.
func (a Array) Decode(i int, f func(*ir.Node) error) error {
	if i < 0 || i >= len(a) {
		return wrapIndex(i, &ShapeError{Count: len(a), Expected: fmt.Sprintf("index %d", i)})
	}
	return wrapIndex(i, f(a[i]))
}

// DecodeSlice decodes every element of the array node n with f.
func DecodeSlice[T any](n *ir.Node, f func(*ir.Node) (T, error)) ([]T, error) {
	a, err := MatchArray(n)
	if err != nil {
		return nil, err
	}
	res := make([]T, len(a))
	for i, v := range a {
		res[i], err = f(v)
		if err != nil {
			return nil, wrapIndex(i, err)
		}
	}
	return res, nil
}

// Elements decodes every element of the array node n as T.
func Elements[T Scalar](n *ir.Node) ([]T, error) {
	return DecodeSlice(n, Match[T])
}
