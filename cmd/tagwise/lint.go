package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tagwise/internal/diag"
	"tagwise/internal/diagfmt"
	"tagwise/internal/lint"
	"tagwise/internal/source"
	"tagwise/internal/trace"
	"tagwise/internal/ui"
	"tagwise/internal/validate"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [flags] file...",
		Short: "Validate documents against the catalog schema",
		Long: `Lint runs the configured validator over each document and prints the
diagnostics it reports. The exit status is 1 when any document has issues`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLint,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("jobs", 0, "max parallel validator runs (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("path-mode", "auto", "how to print paths (auto|absolute|relative|basename)")
	cmd.Flags().Int("context", 0, "source lines of context around each diagnostic")
	return cmd
}

// lintResult is the outcome for one document.
type lintResult struct {
	path   string
	file   *source.File
	report *lint.Report
	err    error
}

func (r *lintResult) hasIssues() bool {
	return r.err != nil || r.report.Len() > 0
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := diagfmt.ParsePathMode(pathModeFlag)
	if err != nil {
		return err
	}
	contextLines, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}
	schema := cat.Schema()
	if len(schema) == 0 {
		return fmt.Errorf("%s: catalog has no schema; set [catalog].schema", cfg.Path)
	}
	v := newValidator(cfg)

	var results []*lintResult
	err = phase("lint", func() (string, error) {
		if format == "pretty" && !quiet(cmd) && shouldUseTUI(mode) {
			var uiErr error
			results, uiErr = runLintWithUI(cmd.Context(), "tagwise lint", args, func(emit func(ui.Event)) []*lintResult {
				return lintFiles(cmd.Context(), args, v, schema, jobs, emit)
			})
			return fmt.Sprintf("%d file(s), ui", len(args)), uiErr
		}
		results = lintFiles(cmd.Context(), args, v, schema, jobs, nil)
		return fmt.Sprintf("%d file(s)", len(args)), nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		if err := writeLintJSON(out, results); err != nil {
			return err
		}
	} else {
		opts := diagfmt.PrettyOpts{
			Color:    useColor(cmd, stdoutFile(cmd)),
			Context:  contextLines,
			PathMode: pathMode,
			BaseDir:  cfg.Root,
		}
		if err := writeLintPretty(out, results, opts, quiet(cmd)); err != nil {
			return err
		}
	}

	for _, r := range results {
		if r.hasIssues() {
			return errIssues
		}
	}
	return nil
}

// lintFiles validates paths with at most jobs concurrent validator runs.
// Results keep the order of paths. emit may be nil.
func lintFiles(ctx context.Context, paths []string, v validate.Validator, schema []byte, jobs int, emit func(ui.Event)) []*lintResult {
	if emit == nil {
		emit = func(ui.Event) {}
	}
	results := make([]*lintResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		results[i] = &lintResult{path: path}
		emit(ui.Event{File: path, Stage: ui.StageQueued})
	}
	for _, r := range results {
		g.Go(func() error {
			emit(ui.Event{File: r.path, Stage: ui.StageReading})
			file, err := source.Load(r.path)
			if err != nil {
				r.err = err
				emit(ui.Event{File: r.path, Stage: ui.StageFailed})
				return nil
			}
			r.file = file
			emit(ui.Event{File: r.path, Stage: ui.StageValidating})
			r.report, r.err = validate.Lint(gctx, v, r.path, file.Content, schema)
			switch {
			case r.err != nil:
				emit(ui.Event{File: r.path, Stage: ui.StageFailed})
			case r.report.Len() > 0:
				emit(ui.Event{File: r.path, Stage: ui.StageIssues, Issues: r.report.Len()})
			default:
				emit(ui.Event{File: r.path, Stage: ui.StageValid})
			}
			return nil
		})
	}
	_ = g.Wait()
	trace.Point(trace.FromContext(ctx), trace.ScopeStep, "lint", fmt.Sprintf("%d file(s)", len(paths)), trace.CurrentSpan(ctx))
	return results
}

func writeLintPretty(w io.Writer, results []*lintResult, opts diagfmt.PrettyOpts, quiet bool) error {
	var errs, warns int
	for _, r := range results {
		if r.err != nil {
			errs++
			shown := diagfmt.FormatPath(r.path, opts.PathMode, opts.BaseDir)
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", shown, r.err); err != nil {
				return err
			}
			continue
		}
		if r.report.Len() == 0 {
			continue
		}
		errs += diag.Count(r.report.Diagnostics, diag.SevError)
		warns += r.report.Len() - diag.Count(r.report.Diagnostics, diag.SevError)
		if err := diagfmt.Pretty(w, r.path, r.file, r.report.Diagnostics, opts); err != nil {
			return err
		}
	}
	if quiet {
		return nil
	}
	return diagfmt.Summary(w, len(results), errs, warns, opts.Color)
}

func writeLintJSON(w io.Writer, results []*lintResult) error {
	files := make([]diagfmt.FileLintJSON, 0, len(results))
	for _, r := range results {
		entry := diagfmt.FileLintJSON{Path: r.path}
		if r.err != nil {
			entry.Error = r.err.Error()
		} else {
			entry.Result = diagfmt.BuildLintJSON(r.report)
		}
		files = append(files, entry)
	}
	return diagfmt.WriteLintFilesJSON(w, files)
}
