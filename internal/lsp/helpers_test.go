package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"time"

	"tagwise/internal/catalog"
	"tagwise/internal/validate"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	tags := []catalog.TagEntry{
		{Name: "input", AllowedAttributes: []string{"type", "value", "disabled"}},
		{Name: "table", AllowedAttributes: []string{"border"}},
		{Name: "row", AllowedParents: []string{"table"}},
		{Name: "root", AllowedParents: []string{catalog.RootTag}},
	}
	attrs := []catalog.AttrEntry{
		{Key: "id", Global: true},
		{Key: "input/type", Kind: catalog.AttrEnumerated, AllowedValues: []string{"text", "radio", "checkbox"}},
		{Key: "disabled", Kind: catalog.AttrFlag},
	}
	cat, err := catalog.New(tags, attrs, []byte("<xs:schema/>"))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

// newTestServer returns a server whose debounce never fires on its own.
func newTestServer(t *testing.T, out io.Writer, v validate.Validator) *Server {
	t.Helper()
	return NewServer(bytes.NewReader(nil), out, ServerOptions{
		Debounce:  time.Hour,
		Catalog:   testCatalog(t),
		Validator: v,
		Log:       io.Discard,
	})
}

func testURI(t *testing.T) string {
	t.Helper()
	return pathToURI(filepath.Join(t.TempDir(), "doc.xml"))
}

func openDoc(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	payload, _ := json.Marshal(didOpenTextDocumentParams{
		TextDocument: textDocumentItem{URI: uri, Version: 1, Text: text},
	})
	if err := s.handleDidOpen(&rpcMessage{Method: "textDocument/didOpen", Params: payload}); err != nil {
		t.Fatalf("didOpen: %v", err)
	}
}

// stopTimer disarms the pending debounce so the test drives runs itself.
func stopTimer(s *Server) {
	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.mu.Unlock()
}

func readAll(t *testing.T, data []byte) []rpcMessage {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(data))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(reader)
		if err == io.EOF {
			return msgs
		}
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		msgs = append(msgs, msg)
	}
}
