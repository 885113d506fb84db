package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tagwise/internal/observ"
	"tagwise/internal/prof"
)

// runState is what beforeRun sets up for the executing command.
var runState = struct {
	cleanups []func()
	timer    *observ.Timer // nil unless --timings
}{}

func beforeRun(cmd *cobra.Command, _ []string) error {
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		stopProf()
		return err
	}
	// трассировку закрываем раньше профилей
	runState.cleanups = []func(){stopTrace, stopProf}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	runState.timer = nil
	if timings {
		runState.timer = observ.NewTimer()
	}
	return nil
}

func afterRun(cmd *cobra.Command, _ []string) error {
	return finishRun(cmd.ErrOrStderr())
}

// finishRun prints timings and releases what beforeRun started. cobra skips
// post-run hooks when RunE fails, so main calls it as well; the second call
// is a no-op.
func finishRun(w io.Writer) error {
	timer := runState.timer
	runState.timer = nil
	for _, fn := range runState.cleanups {
		fn()
	}
	runState.cleanups = nil
	return timer.WriteSummary(w)
}

// phase times fn under name when --timings is set.
func phase(name string, fn func() (string, error)) error {
	idx := runState.timer.Begin(name)
	note, err := fn()
	if err != nil && note == "" {
		note = "failed"
	}
	runState.timer.End(idx, note)
	return err
}

// setupProfiling inspects the profiling flags and starts the profilers.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()
	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	session, err := prof.Start(prof.Options{CPU: cpuProfile, Mem: memProfile, Trace: tracePath})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}
