package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"tagwise/internal/complete"
	"tagwise/internal/diagfmt"
	"tagwise/internal/source"
)

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [flags] file",
		Short: "Show completion candidates at a cursor position",
		Long: `Complete resolves the completion context at a cursor position and prints
the candidates. With --pick the chosen candidate is inserted and the edited
document is printed`,
		Args: cobra.ExactArgs(1),
		RunE: runComplete,
	}
	cmd.Flags().Int("offset", -1, "cursor byte offset")
	cmd.Flags().Int("line", 0, "cursor line (1-based), used with --col")
	cmd.Flags().Int("col", 0, "cursor byte column (1-based), used with --line")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().String("pick", "", "insert this candidate and print the result")
	return cmd
}

// pickJSON is the --pick --format=json surface.
type pickJSON struct {
	Text     string           `json:"text"`
	Cursor   uint32           `json:"cursor"`
	FollowUp *complete.Result `json:"followUp"`
}

func runComplete(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	pick, err := cmd.Flags().GetString("pick")
	if err != nil {
		return fmt.Errorf("failed to get pick flag: %w", err)
	}

	file, err := source.Load(args[0])
	if err != nil {
		return err
	}
	cursor, err := cursorOffset(cmd, file)
	if err != nil {
		return err
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	buf := complete.NewTextBuffer(file.Path, string(file.Content), cursor)
	var (
		res *complete.Result
		ctx complete.Context
	)
	_ = phase("complete", func() (string, error) {
		res, ctx = complete.Complete(buf.Navigator(), cat)
		return ctx.Kind().String(), nil
	})
	out := cmd.OutOrStdout()

	if pick == "" {
		if format == "json" {
			return diagfmt.WriteCompletionJSON(out, res)
		}
		return diagfmt.FormatCompletionPretty(out, ctx, res)
	}

	if res == nil || !slices.Contains(res.Hints, pick) {
		return fmt.Errorf("%q is not a candidate at offset %d", pick, cursor)
	}
	var followUp *complete.Result
	followCtx := complete.Context(complete.NoContext{})
	if complete.Insert(buf, cat, ctx, pick) {
		followUp, followCtx = complete.Complete(buf.Navigator(), cat)
	}
	if format == "json" {
		return writePickJSON(out, pickJSON{Text: buf.String(), Cursor: buf.Cursor(), FollowUp: followUp})
	}
	if _, err := io.WriteString(out, buf.String()); err != nil {
		return err
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		fmt.Fprintln(out)
	}
	if followUp != nil && !quiet(cmd) {
		fmt.Fprintf(out, "--- follow-up at offset %d\n", buf.Cursor())
		return diagfmt.FormatCompletionPretty(out, followCtx, followUp)
	}
	return nil
}

// cursorOffset reads --offset or --line/--col. The offset is clamped to the
// document.
func cursorOffset(cmd *cobra.Command, file *source.File) (uint32, error) {
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return 0, fmt.Errorf("failed to get offset flag: %w", err)
	}
	line, err := cmd.Flags().GetInt("line")
	if err != nil {
		return 0, fmt.Errorf("failed to get line flag: %w", err)
	}
	col, err := cmd.Flags().GetInt("col")
	if err != nil {
		return 0, fmt.Errorf("failed to get col flag: %w", err)
	}
	switch {
	case offset >= 0 && (line > 0 || col > 0):
		return 0, fmt.Errorf("use either --offset or --line/--col")
	case offset >= 0:
		off, err := safecast.Conv[uint32](offset)
		if err != nil {
			return file.Len(), nil
		}
		return min(off, file.Len()), nil
	case line > 0 && col > 0:
		l, err := safecast.Conv[uint32](line)
		if err != nil {
			return 0, fmt.Errorf("line %d out of range", line)
		}
		c, err := safecast.Conv[uint32](col)
		if err != nil {
			return 0, fmt.Errorf("column %d out of range", col)
		}
		return file.Offset(l, c), nil
	}
	return 0, fmt.Errorf("cursor position required: --offset or --line and --col")
}

func writePickJSON(w io.Writer, v pickJSON) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
