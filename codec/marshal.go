package codec

import (
	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
)

// Marshaler is implemented by types that build their own tree.
type Marshaler interface {
	ToIR() (*ir.Node, error)
}

// Unmarshaler is implemented by types that decode themselves from a tree,
// typically with an ObjectDecoder or Lint.
type Unmarshaler interface {
	FromIR(*ir.Node) error
}

// Decode calls u.FromIR on n.
func Decode(n *ir.Node, u Unmarshaler) error {
	err := u.FromIR(n)
	if err != nil && debug.Decode() {
		debug.Logf("decode: %T: %v", u, err)
	}
	return err
}

// Unmarshal parses d and decodes the resulting document into u.
func Unmarshal(d []byte, u Unmarshaler, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return Decode(node, u)
}

// Marshal serializes the tree built by m.
func Marshal(m Marshaler, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := m.ToIR()
	if err != nil {
		return nil, err
	}
	return encode.Append(nil, node, opts...)
}
