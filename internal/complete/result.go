package complete

import "tagwise/internal/catalog"

// Result is the hint list shown to the user. A nil *Result ends the
// completion session.
type Result struct {
	Hints             []string `json:"hints"`
	Match             string   `json:"match"`
	SelectInitial     bool     `json:"selectInitial"`
	HandleWideResults bool     `json:"handleWideResults"`
}

// Candidates runs the engine matching ctx.
func Candidates(ctx Context, cat *catalog.Catalog) *Result {
	var (
		hints []string
		ok    = true
	)
	switch c := ctx.(type) {
	case TagContext:
		hints = TagNames(cat, c.Prefix, c.Parent)
	case AttributeNameContext:
		hints, ok = AttributeNames(cat, c.Tag, c.Used, c.Prefix)
	case AttributeValueContext:
		hints, ok = AttributeValues(cat, c.Tag, c.Attribute, c.Prefix)
	default:
		return nil
	}
	if !ok {
		return nil
	}
	return &Result{Hints: hints, Match: Prefix(ctx), SelectInitial: true}
}

// Complete resolves the context at the cursor and returns its candidates
// together with the context needed for a later Insert.
func Complete(nav Navigator, cat *catalog.Catalog) (*Result, Context) {
	ctx := Resolve(nav)
	return Candidates(ctx, cat), ctx
}
