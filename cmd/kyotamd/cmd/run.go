// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI command for running source files, optionally on change
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	"github.com/msto63/kyotamd/foundation/kyotamd"
	"github.com/msto63/kyotamd/internal/watch"
)

var (
	runWatch  bool
	runResult bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Runs source files",
	Long: `Runs one or more source files in order in a single interpreter, so
variables and labels defined by one file are visible to the next.

With --watch the files are run again whenever one of them changes, each
time in a fresh interpreter. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "rerun when a file changes")
	runCmd.Flags().BoolVarP(&runResult, "result", "r", false, "print the value of the last command")
}

func runRun(cmd *cobra.Command, args []string) error {
	err := runFiles(args)
	if !runWatch {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fields := mdwlog.Fields{
		"files":    args,
		"debounce": appSettings.Run.WatchDebounce.String(),
	}
	w, werr := watch.New(args, watch.Options{
		Debounce: appSettings.Run.WatchDebounce,
		Logger:   logger,
		OnChange: func(changed []string) {
			_ = rerun(args, changed, fields)
		},
	})
	if werr != nil {
		return werr
	}

	logger.Debug("Watching source files", fields)
	fmt.Fprintf(os.Stderr, "--- watching %d file(s), Ctrl+C to stop\n", len(args))
	return w.Run(ctx)
}

// rerun runs files again after a change. Evaluation errors are printed by
// runFiles; other failures, such as an engine that cannot be built, are
// logged here so the watch loop keeps going.
func rerun(files, changed []string, fields mdwlog.Fields) error {
	fmt.Fprintf(os.Stderr, "--- %s changed, running again\n", changed[0])

	err := runFiles(files)
	if err != nil && !errors.Is(err, errReported) {
		logger.ErrorWithErr("Rerun failed", err, fields.Merge(mdwlog.Fields{"changed": changed}))
	}
	return err
}

// runFiles evaluates files in one fresh engine and stops at the first
// failure, which is printed with its location
func runFiles(files []string) error {
	stdin := bufio.NewReader(os.Stdin)
	engine, err := newEngine(os.Stdout, stdin)
	if err != nil {
		return err
	}

	var last *kyotamd.Result
	for _, file := range files {
		result, err := engine.EvalFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: "+describe(file, err))
			return reported(err)
		}

		logger.Debug("File evaluated", mdwlog.Fields{
			"run_id":   result.RunID,
			"file":     file,
			"commands": result.Commands,
			"duration": result.ExecutionTime.String(),
		})
		last = result
	}

	if runResult && last != nil {
		if text, ok := last.Value.Get(); ok {
			fmt.Println(text)
		}
	}
	return nil
}
