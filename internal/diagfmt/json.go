package diagfmt

import (
	"encoding/json"
	"io"

	"tagwise/internal/lint"
)

// PosJSON is a 0-based position ("ch" is the column).
type PosJSON struct {
	Line uint32 `json:"line"`
	Ch   uint32 `json:"ch"`
}

// LintErrorJSON is one entry of the lint result surface.
type LintErrorJSON struct {
	Pos     PosJSON `json:"pos"`
	Message string  `json:"message"`
}

// LintJSON is the lint result surface for one document. A valid document
// is rendered as JSON null.
type LintJSON struct {
	Errors []LintErrorJSON `json:"errors"`
}

// FileLintJSON pairs a document path with its lint result.
type FileLintJSON struct {
	Path   string    `json:"path"`
	Result *LintJSON `json:"result"`
	Error  string    `json:"error,omitempty"`
}

// BuildLintJSON converts a report; nil stays nil.
func BuildLintJSON(rep *lint.Report) *LintJSON {
	if rep == nil {
		return nil
	}
	out := &LintJSON{Errors: make([]LintErrorJSON, 0, rep.Len())}
	for _, d := range rep.Diagnostics {
		out.Errors = append(out.Errors, LintErrorJSON{
			Pos:     PosJSON{Line: d.Line, Ch: d.Column},
			Message: d.Message,
		})
	}
	return out
}

// WriteLintJSON writes the surface of a single document.
func WriteLintJSON(w io.Writer, rep *lint.Report) error {
	return writeJSON(w, BuildLintJSON(rep))
}

// WriteLintFilesJSON writes one entry per document, in input order.
func WriteLintFilesJSON(w io.Writer, files []FileLintJSON) error {
	if files == nil {
		files = []FileLintJSON{}
	}
	return writeJSON(w, files)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
