package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/jsonv/encode"
	"go.lsp.dev/protocol"
)

const formatIndent = 2

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	return formatEdits(doc)
}

// formatEdits returns a single edit replacing the whole document with its
// indented form, or no edit if it is already formatted.
func formatEdits(doc *document) ([]protocol.TextEdit, error) {
	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf, encode.EncodeIndent(formatIndent)); err != nil {
		// non-finite numbers stay as written
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
