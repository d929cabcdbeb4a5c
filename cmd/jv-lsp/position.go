package main

import (
	"unicode/utf8"

	"github.com/signadot/jsonv/token"
	"go.lsp.dev/protocol"
)

// Positions count characters as runes, like the rest of this server.

func offsetToPosition(content string, off int) protocol.Position {
	off = min(max(off, 0), len(content))
	line, col := token.NewPosDoc([]byte(content)).LineCol(off)
	lineStart := off - col
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf8.RuneCountInString(content[lineStart:off])),
	}
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

func positionToOffset(content string, pos protocol.Position) int {
	return lineColToOffset(content, int(pos.Line), int(pos.Character))
}

func spanRange(content string, start, end int) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(content, start),
		End:   offsetToPosition(content, end),
	}
}
