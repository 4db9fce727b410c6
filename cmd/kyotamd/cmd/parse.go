// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     cmd
// Description: CLI command for dumping the command tree of a source file
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	"github.com/msto63/kyotamd/foundation/kyotamd"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
	mdwparser "github.com/msto63/kyotamd/foundation/kyotamd/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Shows the command tree of a source file",
	Long: `Parses a file and prints its commands.

Formats:
  text    indented tree with line numbers (default)
  source  normalized source text
  yaml    YAML document
  json    JSON document`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, source, yaml or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := kyotamd.ReadSource(args[0])
	if err != nil {
		return err
	}

	p, err := mdwparser.New(mdwparser.Options{
		Logger:         logger,
		MaxInputLength: appSettings.Run.MaxInputLength,
	})
	if err != nil {
		return err
	}

	program, err := p.Parse(text)
	if err != nil {
		return mdwerror.New(describe(args[0], err)).
			WithCode(mdwerror.GetCode(err)).
			WithOperation("cmd.parse")
	}

	return writeProgram(cmd.OutOrStdout(), program, parseFormat)
}

// writeProgram renders program in the given format
func writeProgram(w io.Writer, program []*mdwast.Command, format string) error {
	switch strings.ToLower(format) {
	case "text":
		tree := mdwast.NewTreeVisitor()
		for _, c := range program {
			c.Accept(tree)
		}
		_, err := io.WriteString(w, tree.String())
		return err

	case "source":
		if len(program) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, mdwast.Program(program).String())
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(mdwast.DumpProgram(program)); err != nil {
			return err
		}
		return enc.Close()

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mdwast.DumpProgram(program))

	default:
		return mdwerror.New("unknown format " + format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse").
			WithDetail("format", format)
	}
}
