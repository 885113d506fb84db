package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tagwise/internal/lsp"
	"tagwise/internal/validate"
)

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lsp",
		Short:        "Run the tagwise language server over stdio",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runLSP,
	}
	cmd.Flags().Bool("no-lint", false, "disable diagnostics")
	cmd.Flags().Int("jobs", 0, "max parallel validator runs (0=4)")
	return cmd
}

func runLSP(cmd *cobra.Command, _ []string) error {
	noLint, err := cmd.Flags().GetBool("no-lint")
	if err != nil {
		return fmt.Errorf("failed to get no-lint flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	var v validate.Validator
	if !noLint && len(cat.Schema()) > 0 {
		v = newValidator(cfg)
	}
	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Debounce:  cfg.LSP.Debounce.Duration,
		Catalog:   cat,
		Validator: v,
		Jobs:      jobs,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
