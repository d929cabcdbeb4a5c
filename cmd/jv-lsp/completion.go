package main

import (
	"context"

	"github.com/signadot/jsonv/token"
	"go.lsp.dev/protocol"
)

var valueCompletions = []protocol.CompletionItem{
	{Label: "true", Kind: protocol.CompletionItemKindKeyword},
	{Label: "false", Kind: protocol.CompletionItemKindKeyword},
	{Label: "null", Kind: protocol.CompletionItemKindKeyword},
	{Label: "{}", Kind: protocol.CompletionItemKindSnippet, InsertText: "{}"},
	{Label: "[]", Kind: protocol.CompletionItemKindSnippet, InsertText: "[]"},
}

// Completion offers literals where a value may start: at the start of the
// document or after ':', '[' or ','.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := positionToOffset(doc.content, params.Position)
	if !valuePosition(doc.content[:off]) {
		return &protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
	}
	return &protocol.CompletionList{Items: valueCompletions}, nil
}

func valuePosition(before string) bool {
	for i := len(before) - 1; i >= 0; i-- {
		c := before[i]
		if token.IsWhitespace(c) {
			continue
		}
		return c == token.Colon || c == token.LSquare || c == token.Comma
	}
	return true
}
