package encode

import (
	"fmt"
	"io"

	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/token"
)

type EncState struct {
	depth  int
	indent int
	strict bool

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Append(nil, node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

// Append appends the serialization of node to dst. A nil node encodes as
// null.
func Append(dst []byte, node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	return newEncState(opts).append(dst, node)
}

func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	d, err := Append(nil, node, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (es *EncState) append(dst []byte, node *ir.Node) ([]byte, error) {
	if node == nil {
		return es.colored(dst, ir.NullType, ValueColor, "null"), nil
	}
	switch node.Type {
	case ir.NullType:
		return es.colored(dst, ir.NullType, ValueColor, "null"), nil
	case ir.BoolType:
		if node.Bool {
			return es.colored(dst, ir.BoolType, ValueColor, "true"), nil
		}
		return es.colored(dst, ir.BoolType, ValueColor, "false"), nil
	case ir.NumberType:
		if es.strict && !node.Number.IsFinite() {
			return nil, fmt.Errorf("%w: %s", ErrNonFinite, node.Number)
		}
		if es.Color == nil {
			return node.Number.AppendText(dst), nil
		}
		return es.colored(dst, ir.NumberType, ValueColor, node.Number.String()), nil
	case ir.StringType:
		if es.Color == nil {
			return token.AppendQuote(dst, node.String), nil
		}
		return es.colored(dst, ir.StringType, ValueColor, token.Quote(node.String)), nil
	case ir.ArrayType:
		return es.appendArray(dst, node)
	case ir.ObjectType:
		return es.appendObject(dst, node)
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

func (es *EncState) appendArray(dst []byte, node *ir.Node) ([]byte, error) {
	dst = es.colored(dst, ir.ArrayType, SepColor, "[")
	if len(node.Values) == 0 {
		return es.colored(dst, ir.ArrayType, SepColor, "]"), nil
	}
	es.depth++
	var err error
	for i, v := range node.Values {
		if i > 0 {
			dst = es.colored(dst, ir.ArrayType, SepColor, ",")
		}
		dst = es.newline(dst)
		dst, err = es.append(dst, v)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	dst = es.newline(dst)
	return es.colored(dst, ir.ArrayType, SepColor, "]"), nil
}

func (es *EncState) appendObject(dst []byte, node *ir.Node) ([]byte, error) {
	if len(node.Fields) != len(node.Values) {
		return nil, fmt.Errorf("%w: object has %d fields and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	dst = es.colored(dst, ir.ObjectType, SepColor, "{")
	if len(node.Values) == 0 {
		return es.colored(dst, ir.ObjectType, SepColor, "}"), nil
	}
	es.depth++
	sep := ":"
	if es.indent > 0 {
		sep = ": "
	}
	var err error
	for i, v := range node.Values {
		if i > 0 {
			dst = es.colored(dst, ir.ObjectType, SepColor, ",")
		}
		dst = es.newline(dst)
		if es.Color == nil {
			dst = token.AppendQuote(dst, string(node.Fields[i]))
		} else {
			dst = es.colored(dst, ir.ObjectType, FieldColor, token.Quote(string(node.Fields[i])))
		}
		dst = es.colored(dst, ir.ObjectType, SepColor, sep)
		dst, err = es.append(dst, v)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	dst = es.newline(dst)
	return es.colored(dst, ir.ObjectType, SepColor, "}"), nil
}

func (es *EncState) newline(dst []byte) []byte {
	if es.indent <= 0 {
		return dst
	}
	dst = append(dst, '\n')
	for i := 0; i < es.depth*es.indent; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

func (es *EncState) colored(dst []byte, t ir.Type, a ColorAttr, s string) []byte {
	if es.Color == nil {
		return append(dst, s...)
	}
	return append(dst, es.Color(t, a, s)...)
}
