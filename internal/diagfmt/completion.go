package diagfmt

import (
	"fmt"
	"io"

	"tagwise/internal/complete"
)

// WriteCompletionJSON writes the completion surface; a nil result is null.
func WriteCompletionJSON(w io.Writer, res *complete.Result) error {
	return writeJSON(w, res)
}

// FormatCompletionPretty describes the context and lists the hints.
func FormatCompletionPretty(w io.Writer, ctx complete.Context, res *complete.Result) error {
	if _, err := fmt.Fprintf(w, "context: %s\n", describeContext(ctx)); err != nil {
		return err
	}
	if res == nil {
		_, err := fmt.Fprintln(w, "no completion (session ends)")
		return err
	}
	if _, err := fmt.Fprintf(w, "match:   %q\n", res.Match); err != nil {
		return err
	}
	if len(res.Hints) == 0 {
		_, err := fmt.Fprintln(w, "hints:   (none)")
		return err
	}
	if _, err := fmt.Fprintln(w, "hints:"); err != nil {
		return err
	}
	for i, h := range res.Hints {
		if _, err := fmt.Fprintf(w, "%3d  %s\n", i+1, h); err != nil {
			return err
		}
	}
	return nil
}

func describeContext(ctx complete.Context) string {
	switch c := ctx.(type) {
	case complete.TagContext:
		return fmt.Sprintf("tag (parent %s)", c.Parent)
	case complete.AttributeNameContext:
		s := fmt.Sprintf("attribute name on <%s>, %d used", c.Tag, len(c.Used))
		if c.ShouldReplaceExisting {
			s += ", replacing"
		}
		return s
	case complete.AttributeValueContext:
		return fmt.Sprintf("value of %s on <%s>", c.Attribute, c.Tag)
	}
	return "none"
}
