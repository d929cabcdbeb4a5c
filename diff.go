package jsonv

import (
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/libdiff"
)

// Diff produces an RFC 6902 patch document turning from into to. If there
// are no differences, the result is an empty array.
//
//   - if the types of from and to differ, the node at that path is replaced
//   - for objects, fields missing in to are removed, fields missing in from
//     are added and shared fields are compared recursively
//   - arrays are compared by index, with insertions and deletions aligned
//     on equal elements
//   - numbers are compared by value, so 1.0 and 1 do not differ
//
// Use [libdiff.Diff] for the changes as data.
func Diff(from, to *ir.Node) (*ir.Node, error) {
	changes, err := libdiff.Diff(from, to)
	if err != nil {
		return nil, err
	}
	return libdiff.ToPatch(changes)
}
