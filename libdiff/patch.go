package libdiff

import (
	"fmt"

	"github.com/signadot/jsonv/ir"
)

// Apply applies changes to doc in order and returns the resulting tree.
// doc is not modified; unchanged subtrees are shared with the result.
//
// Change paths must consist of field and index segments. Add on an object
// field that exists replaces its value, and Add on an array inserts before
// the given index, which may equal the array length.
func Apply(doc *ir.Node, changes []Change) (*ir.Node, error) {
	for i := range changes {
		c := &changes[i]
		res, err := apply(doc, c.Path, c)
		if err != nil {
			return nil, fmt.Errorf("%w: change %d (%s %s): %w", ErrApply, i, c.Op, c.Path, err)
		}
		doc = res
	}
	return doc, nil
}

func apply(n *ir.Node, p *ir.Path, c *Change) (*ir.Node, error) {
	if p == nil {
		if c.Op == Remove {
			return nil, fmt.Errorf("cannot remove the root")
		}
		return orNull(c.To), nil
	}
	if n == nil {
		return nil, fmt.Errorf("no such node")
	}
	switch {
	case p.Field != nil:
		return applyField(n, *p.Field, p.Next, c)
	case p.Index != nil:
		return applyIndex(n, *p.Index, p.Next, c)
	default:
		return nil, fmt.Errorf("unsupported path segment in %s", p)
	}
}

func applyField(n *ir.Node, k ir.Key, rest *ir.Path, c *Change) (*ir.Node, error) {
	if n.Type != ir.ObjectType {
		return nil, fmt.Errorf("field %q of %s", k, n.Type)
	}
	idx := -1
	for i := range n.Fields {
		if n.Fields[i] == k {
			idx = i
			break
		}
	}
	if rest != nil {
		if idx == -1 {
			return nil, fmt.Errorf("no field %q", k)
		}
		child, err := apply(n.Values[idx], rest, c)
		if err != nil {
			return nil, err
		}
		return withValue(n, idx, child), nil
	}
	switch c.Op {
	case Add:
		if idx == -1 {
			res := &ir.Node{
				Type:   ir.ObjectType,
				Fields: append(n.Fields[:len(n.Fields):len(n.Fields)], k),
				Values: append(n.Values[:len(n.Values):len(n.Values)], orNull(c.To)),
			}
			return res, nil
		}
		return withValue(n, idx, orNull(c.To)), nil
	case Remove:
		if idx == -1 {
			return nil, fmt.Errorf("no field %q", k)
		}
		return &ir.Node{
			Type:   ir.ObjectType,
			Fields: deleteAt(n.Fields, idx),
			Values: deleteAt(n.Values, idx),
		}, nil
	case Replace:
		if idx == -1 {
			return nil, fmt.Errorf("no field %q", k)
		}
		return withValue(n, idx, orNull(c.To)), nil
	default:
		return nil, fmt.Errorf("unknown op %q", c.Op)
	}
}

// withValue returns a copy of the container n with its i'th value set to v.
func withValue(n *ir.Node, i int, v *ir.Node) *ir.Node {
	res := &ir.Node{Type: n.Type, Fields: n.Fields}
	res.Values = make([]*ir.Node, len(n.Values))
	copy(res.Values, n.Values)
	res.Values[i] = v
	return res
}

func deleteAt[T any](xs []T, i int) []T {
	res := make([]T, 0, len(xs)-1)
	res = append(res, xs[:i]...)
	return append(res, xs[i+1:]...)
}

func orNull(n *ir.Node) *ir.Node {
	if n == nil {
		return ir.Null()
	}
	return n
}
