package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagwise/internal/diagfmt"
	"tagwise/internal/lexer"
	"tagwise/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file",
		Short: "Dump the markup tokens of a document",
		Long:  `Tokenize prints the tokens the completion engine sees for a document`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	file, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	tokens := lexer.Tokenize(file)

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, file)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
