package lsp

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"tagwise/internal/diag"
	"tagwise/internal/lint"
	"tagwise/internal/trace"
	"tagwise/internal/validate"
)

// docRun is one document of a diagnostics pass.
type docRun struct {
	uri     string
	version int
	text    string
	report  *lint.Report
	err     error
}

func (s *Server) scheduleDiagnostics() {
	s.mu.Lock()
	seq := atomic.AddUint64(&s.analysisSeq, 1)
	atomic.StoreUint64(&s.latestSeq, seq)
	if s.diagCancel != nil {
		s.diagCancel()
		s.diagCancel = nil
	}
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	delay := s.debounce
	s.debounceTimer = time.AfterFunc(delay, func() {
		s.runDiagnostics(seq)
	})
	s.mu.Unlock()
}

// stopDiagnostics cancels pending and running passes.
func (s *Server) stopDiagnostics() {
	atomic.AddUint64(&s.latestSeq, 1)
	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}
	if s.diagCancel != nil {
		s.diagCancel()
		s.diagCancel = nil
	}
	s.mu.Unlock()
}

func (s *Server) runDiagnostics(seq uint64) {
	if !s.isLatestSeq(seq) {
		return
	}
	s.mu.Lock()
	if !s.lintEnabled || s.validator == nil || s.catalog == nil || len(s.openDocs) == 0 {
		s.mu.Unlock()
		s.clearPublishedDiagnostics()
		return
	}
	if s.diagCancel != nil {
		s.diagCancel()
	}
	ctx, cancel := context.WithCancel(s.baseCtx)
	s.diagCancel = cancel
	runs := make([]*docRun, 0, len(s.openDocs))
	for uri, text := range s.openDocs {
		runs = append(runs, &docRun{uri: uri, version: s.versions[uri], text: text})
	}
	v := s.validator
	schema := s.catalog.Schema()
	jobs := s.jobs
	verbose := s.traceLSP
	s.mu.Unlock()
	defer cancel()

	sort.Slice(runs, func(i, j int) bool { return runs[i].uri < runs[j].uri })
	if verbose {
		s.logf("diagnostics: seq=%d docs=%d", seq, len(runs))
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, run := range runs {
		g.Go(func() error {
			name := filepath.Base(uriToPath(run.uri))
			run.report, run.err = validate.Lint(ctx, v, name, []byte(run.text), schema)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil || !s.isLatestSeq(seq) {
		if verbose {
			s.logf("diagnostics: seq=%d discarded", seq)
		}
		return
	}
	s.publishDiagnostics(seq, runs)
}

func (s *Server) publishDiagnostics(seq uint64, runs []*docRun) {
	for _, run := range runs {
		if run.err != nil {
			s.logf("validation failed for %s: %v", run.uri, run.err)
			continue
		}
		s.mu.Lock()
		current, open := s.versions[run.uri]
		stale := !open || current != run.version || !s.isLatestSeq(seq)
		if !stale {
			s.published[run.uri] = struct{}{}
		}
		s.mu.Unlock()
		if stale {
			continue
		}
		list := toLSPDiagnostics(run.text, run.report)
		if err := s.sendPublish(run.uri, list); err != nil {
			s.logf("failed to publish diagnostics: %v", err)
		}
		trace.Point(trace.FromContext(s.baseCtx), trace.ScopeStep, "publish", run.uri, 0)
	}
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	if len(s.published) == 0 {
		s.mu.Unlock()
		return
	}
	prev := s.published
	s.published = make(map[string]struct{})
	s.mu.Unlock()
	uris := make([]string, 0, len(prev))
	for uri := range prev {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	for _, uri := range uris {
		if err := s.sendPublish(uri, nil); err != nil {
			s.logf("failed to clear diagnostics: %v", err)
		}
	}
}

// toLSPDiagnostics maps report entries onto text. Each range runs from the
// reported column to the end of its line.
func toLSPDiagnostics(text string, rep *lint.Report) []lspDiagnostic {
	if rep.Len() == 0 {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([]lspDiagnostic, 0, rep.Len())
	for _, d := range rep.Diagnostics {
		line := ""
		if int(d.Line) < len(lines) {
			line = strings.TrimSuffix(lines[d.Line], "\r")
		}
		col := min(int(d.Column), len(line))
		lineNo := int(d.Line)
		out = append(out, lspDiagnostic{
			Range: lspRange{
				Start: position{Line: lineNo, Character: utf16Len(line[:col])},
				End:   position{Line: lineNo, Character: utf16Len(line)},
			},
			Severity: lspSeverity(d.Severity),
			Source:   "tagwise",
			Message:  d.Message,
		})
	}
	return out
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}
