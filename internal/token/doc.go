// Package token defines the lexical token kinds of the markup language.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace inside tags is a token of its own (Whitespace); navigation
//     code decides when to skip it.
//   - A quoted attribute value is a single AttrValue token including both quotes.
//     A quote that is not closed before the end of the tag is a Quote token.
//   - Character data between tags is Text; comments, CDATA and processing
//     instructions are Comment.
package token
