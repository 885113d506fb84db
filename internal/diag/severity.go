package diag

import "strings"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// SeverityOf classifies a validator message. Validators tag warnings in the
// message text ("validity warning : ..."); everything else is an error.
func SeverityOf(msg string) Severity {
	if strings.Contains(strings.ToLower(msg), "warning") {
		return SevWarning
	}
	return SevError
}
