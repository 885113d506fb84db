// Package lint turns validator output into located diagnostics.
package lint

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"tagwise/internal/diag"
)

// FileName is the name the document is validated under. Validator output
// refers to the document by this name only.
const FileName = "file.xml"

const successLine = FileName + " validates"

// Report lists the diagnostics of one validation run in output order. A nil
// *Report means the document is valid.
type Report struct {
	Diagnostics []diag.Diagnostic
}

// Len is nil-safe.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// HasErrors reports whether any diagnostic is an error.
func (r *Report) HasErrors() bool {
	return r != nil && diag.Count(r.Diagnostics, diag.SevError) > 0
}

// Parse converts raw validator output into a Report.
//
// A record starts with "file.xml:<line>:<message>" and may be followed by a
// source excerpt and a caret line pointing at the column. Parsing never
// fails: a record header with an unreadable line number ends the scan and
// the records read so far are returned.
func Parse(output string) *Report {
	if strings.TrimSpace(output) == successLine {
		return nil
	}

	rep := &Report{Diagnostics: []diag.Diagnostic{}}
	var open *diag.Diagnostic
	flush := func() {
		if open != nil {
			rep.Diagnostics = append(rep.Diagnostics, *open)
			open = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if rest, ok := strings.CutPrefix(line, FileName+":"); ok {
			num, msg, _ := strings.Cut(rest, ":")
			n, err := strconv.Atoi(num)
			if err != nil {
				break
			}
			flush()
			open = &diag.Diagnostic{
				Severity: diag.SeverityOf(msg),
				Line:     toZeroBased(n),
				Message:  strings.TrimSpace(msg),
			}
			continue
		}
		if col, ok := caretColumn(line); ok && open != nil {
			open.Column = col
		}
	}
	flush()
	return rep
}

// toZeroBased converts a 1-based validator line number.
func toZeroBased(n int) uint32 {
	line, err := safecast.Conv[uint32](n - 1)
	if err != nil {
		return 0
	}
	return line
}

// caretColumn recognises a marker line: any run of non-caret characters
// followed by a single '^' (trailing spaces allowed).
func caretColumn(line string) (uint32, bool) {
	trimmed := strings.TrimRight(line, " \t")
	idx := strings.IndexByte(trimmed, '^')
	if idx < 0 || idx != len(trimmed)-1 {
		return 0, false
	}
	col, err := safecast.Conv[uint32](idx)
	if err != nil {
		return 0, false
	}
	return col, true
}
