package parse

import (
	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/ir"
)

// Parse parses a complete document. All of d must be consumed.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseInput(d, opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return ParseInput(s, opts...)
}

// ParseInput parses src, which may be any byte slice or string type.
func ParseInput[In Input](src In, opts ...ParseOption) (*ir.Node, error) {
	c := NewCursor(src, opts...)
	if debug.Parse() {
		debug.Logf("parse: %d bytes fragment=%t nonfinite=%t maxdepth=%d",
			len(src), c.opts.fragment, c.opts.nonFinite, c.opts.maxDepth)
	}
	var (
		node *ir.Node
		err  error
	)
	if c.opts.fragment {
		Padding(c)
		node, err = NodeRule(c)
		Padding(c)
	} else {
		node, err = RootRule(c)
	}
	if err != nil {
		err = c.Err(err)
		if debug.Parse() {
			debug.Logf("parse: %v", err)
		}
		return nil, err
	}
	if !c.AtEnd() {
		return nil, c.syntaxError(c.i, "end of input")
	}
	return node, nil
}
