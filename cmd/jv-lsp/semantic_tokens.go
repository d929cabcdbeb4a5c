package main

import (
	"context"
	"unicode/utf8"

	"github.com/signadot/jsonv/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the legend announced in Initialize; token type numbers
// are indexes into it.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

const (
	keywordToken uint32 = iota
	stringToken
	numberToken
	operatorToken
	propertyToken
)

type semToken struct {
	start, end int
	typ        uint32
}

// lexTokens splits content into highlighted tokens. It works on invalid
// documents too: unknown bytes are skipped.
func lexTokens(content string) []semToken {
	var res []semToken
	i := 0
	for i < len(content) {
		c := content[i]
		switch {
		case token.IsWhitespace(c):
			i++
		case c == token.QuoteChar:
			end := stringEnd(content, i)
			res = append(res, semToken{start: i, end: end, typ: stringToken})
			i = end
		case c == token.Minus || token.IsDigit(c):
			end := i + 1
			for end < len(content) && numberByte(content[end]) {
				end++
			}
			res = append(res, semToken{start: i, end: end, typ: numberToken})
			i = end
		case c == token.Colon || c == token.Comma:
			res = append(res, semToken{start: i, end: i + 1, typ: operatorToken})
			if c == token.Colon {
				markKey(res)
			}
			i++
		case isWordByte(c):
			end := i + 1
			for end < len(content) && isWordByte(content[end]) {
				end++
			}
			switch content[i:end] {
			case "true", "false", "null":
				res = append(res, semToken{start: i, end: end, typ: keywordToken})
			}
			i = end
		default:
			i++
		}
	}
	return res
}

// markKey turns the string before a trailing colon into a property.
func markKey(res []semToken) {
	if len(res) >= 2 && res[len(res)-2].typ == stringToken {
		res[len(res)-2].typ = propertyToken
	}
}

func stringEnd(content string, i int) int {
	for j := i + 1; j < len(content); j++ {
		switch content[j] {
		case token.Backslash:
			j++
		case token.QuoteChar:
			return j + 1
		case '\n':
			return j
		}
	}
	return len(content)
}

func numberByte(c byte) bool {
	return token.IsDigit(c) || token.IsExponent(c) || c == token.Dot || c == token.Plus || c == token.Minus
}

func isWordByte(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// encodeTokens produces the LSP relative encoding of toks, which must be
// sorted and lie within [from, to).
func encodeTokens(content string, toks []semToken, from, to int) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.end <= from || t.start >= to {
			continue
		}
		pos := offsetToPosition(content, t.start)
		deltaLine := pos.Line - prevLine
		deltaChar := pos.Character
		if deltaLine == 0 {
			deltaChar = pos.Character - prevChar
		}
		length := uint32(utf8.RuneCountInString(content[t.start:t.end]))
		data = append(data, deltaLine, deltaChar, length, t.typ, 0)
		prevLine = pos.Line
		prevChar = pos.Character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.content, lexTokens(doc.content), 0, len(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from := positionToOffset(doc.content, params.Range.Start)
	to := positionToOffset(doc.content, params.Range.End)
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.content, lexTokens(doc.content), from, to),
	}, nil
}
