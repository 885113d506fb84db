// Package ui renders live progress for multi-document lint runs.
package ui

// Stage is the step a document is in.
type Stage uint8

const (
	StageQueued Stage = iota
	StageReading
	StageValidating
	StageValid
	StageIssues
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageReading:
		return "reading"
	case StageValidating:
		return "validating"
	case StageValid:
		return "valid"
	case StageIssues:
		return "issues"
	case StageFailed:
		return "failed"
	}
	return ""
}

// Finished reports whether no further events are expected for the document.
func (s Stage) Finished() bool {
	return s >= StageValid
}

// progress is the share of work a stage represents.
func (s Stage) progress() float64 {
	switch s {
	case StageReading:
		return 0.2
	case StageValidating:
		return 0.5
	case StageValid, StageIssues, StageFailed:
		return 1
	}
	return 0
}

// Event reports a stage change of one document.
type Event struct {
	File   string
	Stage  Stage
	Issues int // diagnostics found, for StageIssues
}
