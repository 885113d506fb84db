package lsp

import "testing"

func TestApplyChanges(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		changes []textDocumentContentChangeEvent
		want    string
	}{
		{
			name:    "full replace",
			text:    "<a/>",
			changes: []textDocumentContentChangeEvent{{Text: "<b/>"}},
			want:    "<b/>",
		},
		{
			name: "insert on second line",
			text: "<a>\n</a>",
			changes: []textDocumentContentChangeEvent{{
				Range: &lspRange{Start: position{Line: 1, Character: 0}, End: position{Line: 1, Character: 0}},
				Text:  "<b/>",
			}},
			want: "<a>\n<b/></a>",
		},
		{
			name: "replace after astral rune",
			text: "<a t=\"🙂x\"/>",
			changes: []textDocumentContentChangeEvent{{
				Range: &lspRange{Start: position{Line: 0, Character: 8}, End: position{Line: 0, Character: 9}},
				Text:  "y",
			}},
			want: "<a t=\"🙂y\"/>",
		},
		{
			name: "position past end clamps",
			text: "<a/>",
			changes: []textDocumentContentChangeEvent{{
				Range: &lspRange{Start: position{Line: 0, Character: 40}, End: position{Line: 3, Character: 0}},
				Text:  "\n",
			}},
			want: "<a/>\n",
		},
		{
			name: "reversed range inserts",
			text: "<ab/>",
			changes: []textDocumentContentChangeEvent{{
				Range: &lspRange{Start: position{Line: 0, Character: 2}, End: position{Line: 0, Character: 1}},
				Text:  "x",
			}},
			want: "<axb/>",
		},
		{
			name: "edit into empty document",
			text: "",
			changes: []textDocumentContentChangeEvent{{
				Range: &lspRange{Start: position{Line: 0, Character: 0}, End: position{Line: 0, Character: 0}},
				Text:  "<",
			}},
			want: "<",
		},
		{
			name: "sequential edits",
			text: "ab",
			changes: []textDocumentContentChangeEvent{
				{Range: &lspRange{Start: position{Line: 0, Character: 2}, End: position{Line: 0, Character: 2}}, Text: "c"},
				{Range: &lspRange{Start: position{Line: 0, Character: 0}, End: position{Line: 0, Character: 1}}, Text: ""},
			},
			want: "bc",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := applyChanges(tc.text, tc.changes); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUTF16Len(t *testing.T) {
	if got := utf16Len("aé🙂"); got != 4 {
		t.Fatalf("utf16Len = %d, want 4", got)
	}
}
