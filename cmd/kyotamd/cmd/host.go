// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     cmd
// Description: Host commands shipped with the CLI and engine construction
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	"github.com/msto63/kyotamd/foundation/kyotamd"
	mdwinterp "github.com/msto63/kyotamd/foundation/kyotamd/interpreter"
)

// hostCommands returns the commands the CLI adds to every engine. Read-Line
// reads from stdin, which callers share with anything else consuming it.
func hostCommands(stdin *bufio.Reader) map[string]mdwinterp.Action {
	return map[string]mdwinterp.Action{
		"Read-Line": func(ctx mdwinterp.Context, args ...mdwinterp.Value) (mdwinterp.Value, error) {
			line, err := stdin.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return mdwinterp.Void, mdwerror.Wrap(err, "Read-Line failed").
					WithCode(mdwerror.CodeIO).
					WithOperation("host.Read-Line")
			}
			if line == "" && err != nil {
				return mdwinterp.Void, nil
			}
			return mdwinterp.Of(strings.TrimRight(line, "\r\n")), nil
		},

		"Concat": func(ctx mdwinterp.Context, args ...mdwinterp.Value) (mdwinterp.Value, error) {
			return mdwinterp.Of(strings.Join(mdwinterp.Strings(args), "")), nil
		},

		"Env": func(ctx mdwinterp.Context, args ...mdwinterp.Value) (mdwinterp.Value, error) {
			name, ok := mdwinterp.Arg(args, 0).Get()
			if !ok {
				return mdwinterp.Void, mdwerror.NewTypeError("Env requires argument 1 (name)").
					WithOperation("host.Env").
					WithDetail("command", "Env")
			}
			if value, found := os.LookupEnv(name); found {
				return mdwinterp.Of(value), nil
			}
			return mdwinterp.Arg(args, 1), nil
		},
	}
}

// hostUsage documents the host commands for :help
var hostUsage = map[string][2]string{
	"Read-Line": {"", "Reads one line from stdin; Void at end of input"},
	"Concat":    {"[values...]", "Joins the values without separator"},
	"Env":       {"name [default]", "Returns environment variable name, or default"},
}

// newEngine creates an engine with the CLI host commands and the
// configured aliases
func newEngine(output io.Writer, stdin *bufio.Reader) (*kyotamd.Engine, error) {
	registry := mdwinterp.NewRegistry(logger)
	for name, action := range hostCommands(stdin) {
		usage := hostUsage[name]
		if err := registry.Register(mdwinterp.Definition{
			Name:        name,
			Usage:       usage[0],
			Description: usage[1],
			Action:      action,
		}); err != nil {
			return nil, err
		}
	}

	return kyotamd.New(kyotamd.Options{
		Logger:         logger,
		Registry:       registry,
		Aliases:        appSettings.Aliases,
		Output:         output,
		MaxInputLength: appSettings.Run.MaxInputLength,
	})
}
