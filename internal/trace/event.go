package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1 // one CLI command or server session
	ScopeRequest                  // one LSP request or notification
	ScopeFile                     // work on a single document
	ScopeStep                     // resolver / engine steps
	ScopeError                    // failures, emitted from LevelError up
)

func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopeRequest:
		return "request"
	case ScopeFile:
		return "file"
	case ScopeStep:
		return "step"
	case ScopeError:
		return "error"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the tracer
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string // e.g. "lint", "textDocument/completion", "validate:doc.xml"
	Detail   string
	Extra    map[string]string
}
