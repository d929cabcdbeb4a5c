package libdiff

import (
	"fmt"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/ir"
)

// diffObject compares objects by key. Fields only in from are removed,
// fields in both are recursed on, fields only in to are added in their
// order in to.
func diffObject(p prefix, from, to *ir.Node, out *[]Change) error {
	fromIndex, err := codec.NewObjectDecoder(from)
	if err != nil {
		return fmt.Errorf("%w: from %s: %w", ErrDiff, p.path(), err)
	}
	toIndex, err := codec.NewObjectDecoder(to)
	if err != nil {
		return fmt.Errorf("%w: to %s: %w", ErrDiff, p.path(), err)
	}
	for i, k := range from.Fields {
		if !toIndex.Has(k) {
			*out = append(*out, makeRemove(p.field(k), from.Values[i]))
			continue
		}
		if err := diffNode(p.field(k), from.Values[i], toIndex.Get(k), out); err != nil {
			return err
		}
	}
	for i, k := range to.Fields {
		if !fromIndex.Has(k) {
			*out = append(*out, makeAdd(p.field(k), to.Values[i]))
		}
	}
	return nil
}
