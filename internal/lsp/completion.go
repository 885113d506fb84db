package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"tagwise/internal/catalog"
	"tagwise/internal/complete"
	"tagwise/internal/lexer"
	"tagwise/internal/source"
)

const (
	completionItemKindClass    = 7
	completionItemKindProperty = 10
	completionItemKindValue    = 12

	insertTextFormatPlain   = 1
	insertTextFormatSnippet = 2

	triggerSuggestCommand = "editor.action.triggerSuggest"
)

var completionTriggers = []string{"<", " ", "=", `"`}

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	text, ok := s.document(params.TextDocument.URI)
	if !ok || s.catalog == nil {
		return s.sendResponse(msg.ID, nil)
	}
	list := buildCompletion(s.catalog, uriToPath(params.TextDocument.URI), text, params.Position)
	if list == nil {
		// keeps the client from falling back to word completion
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, list)
}

// buildCompletion returns nil when the cursor has no completion context or
// the engine ended the session.
func buildCompletion(cat *catalog.Catalog, path, text string, pos position) *completionList {
	file := source.NewFile(path, []byte(text), source.FileVirtual)
	offset := offsetForPositionInFile(file, pos)
	nav := complete.NewStreamNavigator(lexer.Tokenize(file), offset)
	res, ctx := complete.Complete(nav, cat)
	if res == nil {
		return nil
	}
	anchor, ok := complete.AnchorOf(ctx)
	if !ok {
		return nil
	}
	kind := itemKind(ctx)
	items := make([]completionItem, 0, len(res.Hints))
	for i, hint := range res.Hints {
		item := completionItem{
			Label:            hint,
			Kind:             kind,
			SortText:         fmt.Sprintf("%04d", i),
			Preselect:        res.SelectInitial && i == 0,
			InsertTextFormat: insertTextFormatPlain,
		}
		if ctx.Kind() == complete.KindAttributeValue {
			item.FilterText = `"` + hint
		}

		rec := &editRecorder{cursor: offset}
		followUp := complete.Insert(rec, cat, ctx, hint)
		start, end := anchor.Span()
		newText := anchor.Token.Text
		if rec.edited {
			start, end, newText = rec.start, rec.end, rec.text
			if rel := int(rec.cursor) - int(start); rel >= 0 && rel < len(newText) {
				newText = snippetEscape(newText[:rel]) + "$0" + snippetEscape(newText[rel:])
				item.InsertTextFormat = insertTextFormatSnippet
			}
		}
		item.TextEdit = &textEdit{
			Range:   rangeForSpan(file, source.Span{Start: start, End: end}),
			NewText: newText,
		}
		if followUp {
			item.Command = &command{Title: "Suggest", Command: triggerSuggestCommand}
		}
		items = append(items, item)
	}
	return &completionList{IsIncomplete: false, Items: items}
}

func itemKind(ctx complete.Context) int {
	switch ctx.Kind() {
	case complete.KindTag:
		return completionItemKindClass
	case complete.KindAttributeName:
		return completionItemKindProperty
	default:
		return completionItemKindValue
	}
}

var snippetReplacer = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

func snippetEscape(s string) string {
	return snippetReplacer.Replace(s)
}

// editRecorder is a complete.Buffer that records the single edit an
// insertion makes instead of applying it.
type editRecorder struct {
	cursor     uint32
	edited     bool
	start, end uint32
	text       string
}

func (r *editRecorder) Cursor() uint32 { return r.cursor }

func (r *editRecorder) SetCursor(off uint32) { r.cursor = off }

func (r *editRecorder) Replace(start, end uint32, text string) {
	r.edited = true
	r.start, r.end, r.text = start, end, text
}
