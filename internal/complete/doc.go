// Package complete implements context-aware completion for markup documents.
//
// A completion session runs in three explicit phases, each receiving the
// values produced by the previous one:
//
//	ctx := complete.Resolve(nav)                 // which tag, attribute, prefix
//	res := complete.Candidates(ctx, cat)         // filtered hint list, nil ends the session
//	again := complete.Insert(buf, cat, ctx, hint) // one buffer mutation
//
// Resolve only sees tokens through the Navigator interface, so any tokenizer
// can drive it. StreamNavigator adapts the token slice produced by
// internal/lexer. Malformed or ambiguous input always resolves to NoContext.
package complete
