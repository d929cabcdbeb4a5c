package gomap

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsonv/ir"
)

// FromYAML parses a YAML document into a tree. Mapping order is kept.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// EncodeYAML writes n to w as YAML, with fields in document order.
func EncodeYAML(n *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ToOrdered(n))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
