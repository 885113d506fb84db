package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tagwise/internal/ui"
)

// runLintWithUI drives run while a progress view consumes its events. The
// results are returned once both the run and the view have finished.
func runLintWithUI(ctx context.Context, title string, files []string, run func(emit func(ui.Event)) []*lintResult) ([]*lintResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan []*lintResult, 1)

	go func() {
		res := run(func(ev ui.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
		outcomeCh <- res
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view may quit early (ctrl+c); keep the producer from blocking
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	return outcome, uiErr
}
