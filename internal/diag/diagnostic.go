package diag

import "fmt"

// Diagnostic is one located validation issue.
type Diagnostic struct {
	Severity Severity
	Line     uint32 // 0-based
	Column   uint32 // 0-based, 0 when the validator printed no caret
	Message  string
}

// String formats the diagnostic with 1-based coordinates for humans.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line+1, d.Column+1, d.Severity, d.Message)
}

// Count returns the number of diagnostics at or above sev.
func Count(items []Diagnostic, sev Severity) int {
	n := 0
	for i := range items {
		if items[i].Severity >= sev {
			n++
		}
	}
	return n
}
