package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tagwise/internal/version"
)

type versionOptions struct {
	format      string
	showHash    bool
	showMessage bool
	showDate    bool
	colored     bool
}

type versionPayload struct {
	Tool string `json:"tool"`
	version.Info
	Tagline string `json:"tagline"`
}

const versionTagline = "angle brackets, filled in"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show tagwise build metadata",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("message", false, "include git commit message")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	full, _ := cmd.Flags().GetBool("full")
	hash, _ := cmd.Flags().GetBool("hash")
	message, _ := cmd.Flags().GetBool("message")
	date, _ := cmd.Flags().GetBool("date")
	opts := versionOptions{
		format:      strings.ToLower(format),
		showHash:    hash || full,
		showMessage: message || full,
		showDate:    date || full,
		colored:     useColor(cmd, stdoutFile(cmd)),
	}

	switch opts.format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	info := version.Current()
	if strings.TrimSpace(info.Version) == "" {
		info.Version = "dev"
	}
	if opts.format == "json" {
		return renderVersionJSON(cmd.OutOrStdout(), info)
	}
	renderVersionPretty(cmd.OutOrStdout(), info, opts)
	return nil
}

func renderVersionPretty(out io.Writer, info version.Info, opts versionOptions) {
	fmt.Fprintf(out, "tagwise %s (%s)\n", version.Colored(info.Version, opts.colored), versionTagline)
	if opts.showHash {
		fmt.Fprintf(out, "commit:  %s\n", valueOrUnknown(info.GitCommit))
	}
	if opts.showMessage {
		fmt.Fprintf(out, "message: %s\n", valueOrUnknown(info.Message))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:   %s\n", valueOrUnknown(info.BuildDate))
	}
	if opts.showHash || opts.showMessage || opts.showDate {
		fmt.Fprintf(out, "go:      %s\n", info.GoVersion)
	}
}

func renderVersionJSON(out io.Writer, info version.Info) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(versionPayload{Tool: "tagwise", Info: info, Tagline: versionTagline})
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
