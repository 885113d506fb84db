package lsp

import (
	"bytes"
	"encoding/json"
	"testing"
)

func findItem(t *testing.T, list *completionList, label string) completionItem {
	t.Helper()
	if list == nil {
		t.Fatalf("expected completion list")
	}
	for _, item := range list.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("missing item %q in %+v", label, list.Items)
	return completionItem{}
}

func TestCompletionTagName(t *testing.T) {
	list := buildCompletion(testCatalog(t), "doc.xml", "<table><ro", position{Line: 0, Character: 10})
	if list == nil || len(list.Items) != 1 {
		t.Fatalf("expected one item, got %+v", list)
	}
	item := findItem(t, list, "row")
	if item.TextEdit == nil || item.TextEdit.NewText != "row" {
		t.Fatalf("unexpected edit: %+v", item.TextEdit)
	}
	want := lspRange{Start: position{Line: 0, Character: 8}, End: position{Line: 0, Character: 10}}
	if item.TextEdit.Range != want {
		t.Fatalf("range = %+v, want %+v", item.TextEdit.Range, want)
	}
	if item.InsertTextFormat != insertTextFormatPlain || item.Command != nil {
		t.Fatalf("tag insert should be plain without follow-up: %+v", item)
	}
	if !item.Preselect {
		t.Fatalf("first item should be preselected")
	}
}

func TestCompletionAttributeOpensValue(t *testing.T) {
	list := buildCompletion(testCatalog(t), "doc.xml", "<input ", position{Line: 0, Character: 7})
	labels := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	if got, want := len(labels), 4; got != want {
		t.Fatalf("labels = %v", labels)
	}

	item := findItem(t, list, "type")
	if item.TextEdit.NewText != `type="$0"` || item.InsertTextFormat != insertTextFormatSnippet {
		t.Fatalf("unexpected edit: %+v format=%d", item.TextEdit, item.InsertTextFormat)
	}
	if item.TextEdit.Range.Start != item.TextEdit.Range.End {
		t.Fatalf("expected an empty range at the cursor: %+v", item.TextEdit.Range)
	}
	if item.Command == nil || item.Command.Command != triggerSuggestCommand {
		t.Fatalf("expected follow-up command, got %+v", item.Command)
	}

	flag := findItem(t, list, "disabled")
	if flag.TextEdit.NewText != "disabled" || flag.Command != nil {
		t.Fatalf("flag should insert bare name: %+v", flag)
	}
}

func TestCompletionAttributeValue(t *testing.T) {
	list := buildCompletion(testCatalog(t), "doc.xml", `<input type="te`, position{Line: 0, Character: 15})
	item := findItem(t, list, "text")
	if item.TextEdit.NewText != `"text"` || item.FilterText != `"text` {
		t.Fatalf("unexpected item: %+v", item)
	}
	want := lspRange{Start: position{Line: 0, Character: 12}, End: position{Line: 0, Character: 15}}
	if item.TextEdit.Range != want {
		t.Fatalf("range = %+v, want %+v", item.TextEdit.Range, want)
	}
	if len(list.Items) != 1 {
		t.Fatalf("prefix should filter values: %+v", list.Items)
	}
}

func TestCompletionUTF16Positions(t *testing.T) {
	// the emoji is two UTF-16 units and four bytes
	text := "<!--🙂--><ro"
	list := buildCompletion(testCatalog(t), "doc.xml", text, position{Line: 0, Character: 12})
	item := findItem(t, list, "root")
	want := lspRange{Start: position{Line: 0, Character: 10}, End: position{Line: 0, Character: 12}}
	if item.TextEdit.Range != want {
		t.Fatalf("range = %+v, want %+v", item.TextEdit.Range, want)
	}
}

func TestCompletionNoContext(t *testing.T) {
	if list := buildCompletion(testCatalog(t), "doc.xml", "plain text", position{Line: 0, Character: 3}); list != nil {
		t.Fatalf("expected nil, got %+v", list)
	}
}

func TestHandleCompletionRequest(t *testing.T) {
	var out bytes.Buffer
	server := newTestServer(t, &out, nil)
	uri := testURI(t)
	openDoc(t, server, uri, "<root>\n<tab")

	params, _ := json.Marshal(completionParams{
		TextDocument: textDocumentIdentifier{URI: uri},
		Position:     position{Line: 1, Character: 4},
	})
	if err := server.handleCompletion(&rpcMessage{ID: json.RawMessage(`7`), Method: "textDocument/completion", Params: params}); err != nil {
		t.Fatalf("completion: %v", err)
	}
	msgs := readAll(t, out.Bytes())
	if len(msgs) != 1 || string(msgs[0].ID) != "7" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
	var list completionList
	if err := json.Unmarshal(msgs[0].Result, &list); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Label != "table" {
		t.Fatalf("unexpected items: %+v", list.Items)
	}
}

func TestHandleCompletionUnknownDocument(t *testing.T) {
	var out bytes.Buffer
	server := newTestServer(t, &out, nil)
	params, _ := json.Marshal(completionParams{TextDocument: textDocumentIdentifier{URI: testURI(t)}})
	if err := server.handleCompletion(&rpcMessage{ID: json.RawMessage(`1`), Params: params}); err != nil {
		t.Fatalf("completion: %v", err)
	}
	msgs := readAll(t, out.Bytes())
	if len(msgs) != 1 || string(msgs[0].Result) != "null" {
		t.Fatalf("expected null result, got %+v", msgs)
	}
}
