// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	"github.com/msto63/kyotamd/internal/repl"
	"github.com/msto63/kyotamd/pkg/core/version"
)

var (
	replLineMode bool
	replNoColor  bool
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Starts the interactive REPL",
	Long: `Starts an interactive session. Every line is evaluated in the same
interpreter, so variables and labels persist between lines.

When stdin is not a terminal, or with --line, lines are read one by one
without the full-screen interface.

Meta commands:
  :vars        List variables
  :labels      List labels
  :reset       Clear variables and labels
  :load FILE   Evaluate a source file
  :help        Show commands
  :quit        Leave

Keys (full-screen):
  Enter       Evaluate
  ↑/↓         History
  PgUp/PgDn   Scroll
  Ctrl+L      Clear transcript
  Ctrl+C      Quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replLineMode, "line", false, "line mode even on a terminal")
	replCmd.Flags().BoolVar(&replNoColor, "no-color", false, "disable colors")
}

func runREPL(cmd *cobra.Command, args []string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && !replLineMode
	history := repl.LoadHistory(repl.DefaultHistoryPath(), appSettings.REPL.HistoryLimit)

	logger.Debug("Starting REPL", mdwlog.Fields{
		"interactive": interactive,
		"history":     history.Len(),
	})

	if !interactive {
		stdin := bufio.NewReader(os.Stdin)
		engine, err := newEngine(os.Stdout, stdin)
		if err != nil {
			return err
		}

		prompt := ""
		if term.IsTerminal(int(os.Stdin.Fd())) {
			prompt = appSettings.REPL.Prompt
		}

		err = repl.RunLines(repl.NewSession(engine, logger), stdin, repl.LineOptions{
			Prompt:  prompt,
			Output:  os.Stdout,
			Errors:  os.Stderr,
			History: history,
		})
		if saveErr := history.Save(); saveErr != nil {
			logger.WarnWithErr("Failed to save history", saveErr)
		}
		return err
	}

	// The TUI owns the terminal, so Read-Line sees end of input
	engine, err := newEngine(io.Discard, bufio.NewReader(strings.NewReader("")))
	if err != nil {
		return err
	}

	return repl.Run(repl.NewSession(engine, logger), repl.Config{
		Prompt:  appSettings.REPL.Prompt,
		Title:   version.Short(),
		NoColor: replNoColor || appSettings.REPL.NoColor,
		History: history,
	})
}
