package libdiff

import (
	"fmt"

	"github.com/signadot/jsonv/ir"
)

func applyIndex(n *ir.Node, i int, rest *ir.Path, c *Change) (*ir.Node, error) {
	if n.Type != ir.ArrayType {
		return nil, fmt.Errorf("index %d of %s", i, n.Type)
	}
	N := len(n.Values)
	if rest != nil {
		if i < 0 || i >= N {
			return nil, fmt.Errorf("index %d out of range [0, %d)", i, N)
		}
		child, err := apply(n.Values[i], rest, c)
		if err != nil {
			return nil, err
		}
		return withValue(n, i, child), nil
	}
	switch c.Op {
	case Add:
		if i < 0 || i > N {
			return nil, fmt.Errorf("index %d out of range [0, %d]", i, N)
		}
		vs := make([]*ir.Node, 0, N+1)
		vs = append(vs, n.Values[:i]...)
		vs = append(vs, orNull(c.To))
		vs = append(vs, n.Values[i:]...)
		return ir.FromSlice(vs), nil
	case Remove, Replace:
		if i < 0 || i >= N {
			return nil, fmt.Errorf("index %d out of range [0, %d)", i, N)
		}
		if c.Op == Remove {
			return ir.FromSlice(deleteAt(n.Values, i)), nil
		}
		return withValue(n, i, orNull(c.To)), nil
	default:
		return nil, fmt.Errorf("unknown op %q", c.Op)
	}
}
