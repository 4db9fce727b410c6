// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI command for validating source files without running them
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/kyotamd/foundation/kyotamd"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Checks source files without running them",
	Long: `Parses each file and reports syntax errors, unknown commands and
Label, Goto or If used as arguments. Labels are not checked since a
program may rely on labels defined by an earlier file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(io.Discard, bufio.NewReader(strings.NewReader("")))
	if err != nil {
		return err
	}

	var first error
	for _, file := range args {
		text, err := kyotamd.ReadSource(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: "+describe(file, err))
			if first == nil {
				first = err
			}
			continue
		}

		problems := engine.Check(text)
		if len(problems) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", file)
			continue
		}
		for _, problem := range problems {
			fmt.Fprintln(os.Stderr, describe(file, problem))
		}
		if first == nil {
			first = problems[0]
		}
	}

	if first != nil {
		return reported(first)
	}
	return nil
}
