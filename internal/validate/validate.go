// Package validate runs an external schema validator over a document.
//
// The validator sees the document as lint.FileName and the schema as
// SchemaName inside a private temporary directory, so its output always
// refers to the same fixed names regardless of where the document lives.
package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"tagwise/internal/lint"
	"tagwise/internal/trace"
)

const (
	// DefaultCommand is the validator binary used when none is configured.
	DefaultCommand = "xmllint"
	// SchemaName is the file name the schema is written to.
	SchemaName = "schema.xsd"
)

// Validator checks doc against schema and returns the raw validator output.
// A document with problems is not an error: its diagnostics are in the
// output. Errors mean the validator itself could not run.
type Validator interface {
	Validate(ctx context.Context, doc, schema []byte) (string, error)
}

// Func adapts a function to Validator.
type Func func(ctx context.Context, doc, schema []byte) (string, error)

func (f Func) Validate(ctx context.Context, doc, schema []byte) (string, error) {
	return f(ctx, doc, schema)
}

// Args is the fixed argument list passed to the validator.
func Args() []string {
	return []string{"--noout", "--schema", SchemaName, lint.FileName}
}

// ExecValidator runs a validator subprocess.
type ExecValidator struct {
	Command string        // binary name or path; DefaultCommand when empty
	Timeout time.Duration // 0 disables the timeout
	TempDir string        // parent of the scratch directory; os.TempDir when empty
}

// documentExit lists exit codes xmllint uses when the document itself is
// broken (1: not well-formed, 3: schema validity error).
var documentExit = map[int]bool{1: true, 3: true}

func (v *ExecValidator) Validate(ctx context.Context, doc, schema []byte) (string, error) {
	name := v.Command
	if name == "" {
		name = DefaultCommand
	}
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("validator %s not found: %w", name, err)
	}

	dir, err := os.MkdirTemp(v.TempDir, "tagwise-validate-*")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, SchemaName), schema, 0o600); err != nil {
		return "", fmt.Errorf("failed to write schema: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, lint.FileName), doc, 0o600); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	// #nosec G204 -- the command comes from the project configuration
	cmd := exec.CommandContext(ctx, name, Args()...)
	cmd.Dir = dir
	cmd.WaitDelay = time.Second
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && documentExit[exitErr.ExitCode()] {
			return out.String(), nil
		}
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return "", fmt.Errorf("%s: %s", name, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return out.String(), nil
}

// Lint validates doc and parses the output. A nil report means doc is valid.
func Lint(ctx context.Context, v Validator, name string, doc, schema []byte) (*lint.Report, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFile, "validate:"+name, trace.CurrentSpan(ctx))

	out, err := v.Validate(ctx, doc, schema)
	if err != nil {
		trace.Point(tr, trace.ScopeError, "validate:"+name, err.Error(), span.ID())
		span.End("failed")
		return nil, err
	}
	rep := lint.Parse(out)
	span.WithExtra("diagnostics", fmt.Sprint(rep.Len())).End("")
	return rep, nil
}
