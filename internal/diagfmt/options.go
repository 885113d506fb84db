package diagfmt

import (
	"fmt"
	"path/filepath"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto uses a relative path when the file is below BaseDir.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode converts a flag value into a PathMode.
func ParsePathMode(s string) (PathMode, error) {
	switch s {
	case "", "auto":
		return PathModeAuto, nil
	case "absolute":
		return PathModeAbsolute, nil
	case "relative":
		return PathModeRelative, nil
	case "basename":
		return PathModeBasename, nil
	}
	return PathModeAuto, fmt.Errorf("invalid path mode: %q (expected: auto|absolute|relative|basename)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int // строк контекста вокруг строки с ошибкой
	PathMode PathMode
	BaseDir  string
}

// FormatPath renders path according to mode.
func FormatPath(path string, mode PathMode, baseDir string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	switch mode {
	case PathModeAbsolute:
		return abs
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		base := baseDir
		if base == "" {
			base = "."
		}
		baseAbs, err := filepath.Abs(base)
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(baseAbs, abs)
		if err != nil {
			return abs
		}
		if mode == PathModeAuto && (rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)) {
			return abs
		}
		return rel
	}
	return path
}
