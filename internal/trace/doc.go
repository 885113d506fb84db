// Package trace provides leveled span/event tracing for tagwise.
//
// Tracing is the logging layer of the CLI and the language server: it records
// when a command starts, which requests the server handles and how long
// validator runs take.
//
// # Usage
//
//	tagwise lint --trace=- --trace-level=detail doc.xml
//	tagwise lsp --trace=/tmp/tagwise.ndjson --trace-level=debug
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: error points only
//   - LevelPhase: command boundaries
//   - LevelDetail: requests and per-file work
//   - LevelDebug: everything, including single completion steps
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeRequest, "completion", trace.CurrentSpan(ctx))
//	defer span.End("")
package trace
