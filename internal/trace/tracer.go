package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // wins over OutputPath
	OutputPath string    // file path, "-" or "" for stderr
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			format = FormatNDJSON
		}
	}
	w, owned, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	st := NewStreamTracer(w, cfg.Level, format)
	st.owned = owned
	return st, nil
}

func openOutput(cfg Config) (io.Writer, bool, error) {
	if cfg.Output != nil {
		return cfg.Output, false, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, false, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, true, nil
}
