// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Line-based REPL for pipes and dumb terminals
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineOptions configures RunLines
type LineOptions struct {
	Prompt  string    // Written before each line; empty for none
	Output  io.Writer // Print output, values and meta output
	Errors  io.Writer // Error messages (default: Output)
	History *History
}

// RunLines reads lines from in until EOF or :quit. When in is a
// *bufio.Reader it is used directly, so host commands sharing it read the
// lines that follow.
func RunLines(session *Session, in io.Reader, opts LineOptions) error {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	if opts.Errors == nil {
		opts.Errors = opts.Output
	}

	for {
		if opts.Prompt != "" {
			fmt.Fprint(opts.Output, opts.Prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}

		line = strings.TrimRight(line, "\r\n")
		if opts.History != nil {
			opts.History.Add(strings.TrimSpace(line))
		}

		resp := session.Handle(line)
		writeResponse(opts.Output, opts.Errors, resp)
		if resp.Quit {
			return nil
		}
		if err != nil {
			return nil
		}
	}
}

func writeResponse(out, errOut io.Writer, resp Response) {
	if resp.Output != "" {
		fmt.Fprint(out, resp.Output)
	}
	if resp.Info != "" {
		fmt.Fprintln(out, resp.Info)
	}
	if resp.HasValue() {
		fmt.Fprintln(out, "=> "+resp.Value)
	}
	if resp.Err != nil {
		fmt.Fprintln(errOut, resp.ErrorText())
	}
}
