package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is immutable once stored; edits store a new one.
type document struct {
	uri     string
	content string
	version int32
	node    *ir.Node
	spans   map[*ir.Node]parse.Span
	err     error
}

func newDocument(uri, content string, version int32) *document {
	spans := make(map[*ir.Node]parse.Span)
	node, err := parse.ParseString(content, parse.ParsePositions(spans))
	if debug.LSP() {
		debug.Logf("lsp: parsed %s version %d: %v", uri, version, err)
	}
	return &document{
		uri:     uri,
		content: content,
		version: version,
		node:    node,
		spans:   spans,
		err:     err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: validateDocument(doc),
	})
	if err != nil && debug.LSP() {
		debug.Logf("lsp: publish diagnostics for %s: %v", doc.uri, err)
	}
}

// validateDocument reports the parse error of doc, if any, and otherwise
// warns about repeated object keys.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   lsName,
		}
		if off, ok := parse.ErrorOffset(doc.err); ok {
			d.Range = spanRange(doc.content, off, min(off+1, len(doc.content)))
		}
		return append(diagnostics, d)
	}
	_ = doc.node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.ObjectType {
			return true, nil
		}
		seen := make(map[ir.Key]bool, len(n.Fields))
		for i, k := range n.Fields {
			if !seen[k] {
				seen[k] = true
				continue
			}
			span := doc.spans[n.Values[i]]
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    spanRange(doc.content, span.KeyStart, span.KeyEnd),
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("duplicate key %q", k),
				Source:   lsName,
			})
		}
		return true, nil
	})
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		// a zero range replaces the whole document
		rangeVal := change.Range
		if rangeVal == (protocol.Range{}) {
			content = change.Text
			continue
		}
		start := positionToOffset(content, rangeVal.Start)
		end := positionToOffset(content, rangeVal.End)
		if start <= end {
			content = content[:start] + change.Text + content[end:]
		}
	}
	return content
}
