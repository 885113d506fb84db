// Package diag defines the diagnostic record shared by the lint parser, the
// CLI renderers and the language server.
//
// A Diagnostic is located by a 0-based line and column. Validator output uses
// 1-based lines; internal/lint converts them once while parsing, so every
// consumer here can rely on 0-based positions.
//
// Package diag does no formatting and no IO. Rendering lives in
// internal/diagfmt, transport in internal/lsp.
package diag
