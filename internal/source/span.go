package source

import (
	"fmt"
)

// Span is a half-open byte range inside a single document.
type Span struct {
	Start uint32 `json:"start"` // в байтах включительно
	End   uint32 `json:"end"`   // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether off lies inside the span (End exclusive).
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
