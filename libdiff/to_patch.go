package libdiff

import (
	"fmt"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/ir"
)

// ToPatch renders changes as an RFC 6902 patch document: an array of
// operation objects with "op", "path" as a JSON pointer, and "value"
// except for removals.
func ToPatch(changes []Change) (*ir.Node, error) {
	b := codec.NewArrayBuilder()
	for i := range changes {
		c := &changes[i]
		ptr, err := c.Path.Pointer()
		if err != nil {
			return nil, fmt.Errorf("%w: change %d: %w", ErrDiff, i, err)
		}
		b.AppendObject(func(o *codec.ObjectBuilder) {
			o.Set("op", ir.FromString(string(c.Op)))
			o.Set("path", ir.FromString(ptr))
			if c.Op != Remove {
				o.Set("value", c.To)
			}
		})
	}
	return b.Node(), nil
}
