package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tagwise/internal/diag"
	"tagwise/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, path, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty печатает диагностики одного документа:
//
//	<path>:<line>:<col>: <severity>: <message>
//	   3 | <source line>
//	     |      ^
//
// file may be nil; the excerpt is skipped then.
func Pretty(w io.Writer, path string, file *source.File, items []diag.Diagnostic, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	shown := FormatPath(path, opts.PathMode, opts.BaseDir)
	for _, d := range items {
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n",
			p.path.Sprintf("%s:%d:%d", shown, d.Line+1, d.Column+1),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.bold.Sprint(d.Message),
		); err != nil {
			return err
		}
		if file == nil {
			continue
		}
		if err := excerpt(w, p, file, d, opts.Context); err != nil {
			return err
		}
	}
	return nil
}

func excerpt(w io.Writer, p palette, file *source.File, d diag.Diagnostic, context int) error {
	target := int(d.Line) + 1
	if target > file.LineCount() {
		return nil
	}
	first := max(1, target-context)
	last := min(file.LineCount(), target+context)
	gutter := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		line := expandTabs(file.GetLine(uint32(n)))
		if _, err := fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutter, n), line); err != nil {
			return err
		}
		if n != target {
			continue
		}
		raw := file.GetLine(uint32(n))
		col := min(int(d.Column), len(raw))
		pad := runewidth.StringWidth(expandTabs(raw[:col]))
		if _, err := fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutter, ""),
			strings.Repeat(" ", pad),
			p.caret.Sprint("^"),
		); err != nil {
			return err
		}
	}
	return nil
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	width := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - width%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		sb.WriteRune(r)
		width += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// Summary prints the closing line of a lint run.
func Summary(w io.Writer, files, errors, warnings int, colored bool) error {
	p := newPalette(colored)
	if errors == 0 && warnings == 0 {
		_, err := fmt.Fprintf(w, "%s %d file(s) valid\n", p.caret.Sprint("✓"), files)
		return err
	}
	_, err := fmt.Fprintf(w, "%s, %s in %d file(s)\n",
		p.err.Sprintf("%d error(s)", errors),
		p.warn.Sprintf("%d warning(s)", warnings),
		files,
	)
	return err
}
