package libdiff

import (
	"fmt"

	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
)

// Change is one difference between two trees.
//
// Path addresses the changed node in the document as it stands once the
// changes preceding it in the same list have been applied, which is how
// RFC 6902 operations are addressed. From is nil for Add and To is nil for
// Remove.
type Change struct {
	Op   Op
	Path *ir.Path
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Add:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, encode.MustString(c.To))
	case Remove:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, encode.MustString(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, encode.MustString(c.From), encode.MustString(c.To))
	}
}

type seg struct {
	key   *ir.Key
	index int
}

// prefix is the path under construction, root first. Extending it never
// shares the backing array so sibling paths stay independent.
type prefix []seg

func (p prefix) field(k ir.Key) prefix {
	return append(p[:len(p):len(p)], seg{key: &k})
}

func (p prefix) at(i int) prefix {
	return append(p[:len(p):len(p)], seg{index: i})
}

func (p prefix) path() *ir.Path {
	var res *ir.Path
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].key != nil {
			res = ir.FieldPath(*p[i].key, res)
			continue
		}
		res = ir.IndexPath(p[i].index, res)
	}
	return res
}

func makeAdd(p prefix, to *ir.Node) Change {
	return Change{Op: Add, Path: p.path(), To: to}
}

func makeRemove(p prefix, from *ir.Node) Change {
	return Change{Op: Remove, Path: p.path(), From: from}
}

func makeReplace(p prefix, from, to *ir.Node) Change {
	return Change{Op: Replace, Path: p.path(), From: from, To: to}
}
