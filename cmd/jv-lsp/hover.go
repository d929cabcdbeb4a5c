package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := positionToOffset(doc.content, params.Position)
	node, path := locate(doc.node, doc.spans, off)
	if node == nil {
		return nil, nil
	}
	span := doc.spans[node]
	r := spanRange(doc.content, span.Start, span.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(node, path),
		},
		Range: &r,
	}, nil
}

// locate returns the innermost node whose span contains off, and its path
// from root.
func locate(root *ir.Node, spans map[*ir.Node]parse.Span, off int) (*ir.Node, *ir.Path) {
	span, ok := spans[root]
	if !ok || off < span.Start || off >= span.End {
		return nil, nil
	}
	for i, child := range root.Values {
		n, p := locate(child, spans, off)
		if n == nil {
			continue
		}
		if root.Type == ir.ObjectType {
			return n, ir.FieldPath(root.Fields[i], p)
		}
		return n, ir.IndexPath(i, p)
	}
	return root, nil
}

func buildHoverText(node *ir.Node, path *ir.Path) string {
	parts := []string{
		fmt.Sprintf("**Type:** %s", node.Type),
		fmt.Sprintf("**Path:** `%s`", path),
	}
	if v := getValueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NumberType:
		return numberInfo(node.Number)
	case ir.StringType:
		val := []rune(node.String)
		if len(val) > 50 {
			return fmt.Sprintf("%d characters, `%s...`", len(val), string(val[:50]))
		}
		return fmt.Sprintf("`%s`", node.String)
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	}
	return ""
}

// numberInfo describes how a number is held: inline numbers give their
// decimal scale and integer range, fallback numbers keep their text.
func numberInfo(n ir.Number) string {
	switch n.Kind {
	case ir.InlineNumber:
		info := fmt.Sprintf("`%s` (inline, %d decimal places", n, n.Places)
		if _, err := n.Int64(); err == nil {
			info += ", fits int64"
		} else if _, err := n.Uint64(); err == nil {
			info += ", fits uint64"
		}
		return info + fmt.Sprintf(", float64 `%g`)", n.Float64())
	case ir.FallbackNumber:
		return fmt.Sprintf("`%s` (kept as text, float64 `%g`)", n, n.Float64())
	default:
		return fmt.Sprintf("`%s` (%s)", n, n.Kind)
	}
}
