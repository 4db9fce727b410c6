// File: parser.go
// Title: kyotamd Parser
// Description: Parses command names, argument lists, single command lines
//              and whole source texts into ast commands. Syntax errors are
//              reported as SYNTAX_ERROR with the offending line and column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
	"github.com/msto63/kyotamd/foundation/kyotamd/charset"
)

// Syntax error messages for malformed command names
const (
	ErrMsgStartUppercase = "command names must start with an uppercase letter"
	ErrMsgHyphenated     = "the words in the command name must be hyphenated"
	ErrMsgWordStart      = "words in the command name must start with a number or an uppercase letter"
)

// Parser wraps the package-level parse functions with logging and an
// input length limit
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int // In runes; 0 means unlimited
}

// New creates a new kyotamd parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New("max input length cannot be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New").
			WithDetail("max_input_length", opts.MaxInputLength)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "kyotamd-parser"),
		options: opts,
	}, nil
}

// Parse parses a whole source text
func (p *Parser) Parse(text string) ([]*mdwast.Command, error) {
	length := utf8.RuneCountInString(text)
	if p.options.MaxInputLength > 0 && length > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d", length, p.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.logger.Debug("Parsing source", mdwlog.Fields{
		"length": length,
	})

	commands, err := Parse(text)
	if err != nil {
		p.logger.Debug("Parsing failed", mdwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Parsing completed", mdwlog.Fields{
		"commands": len(commands),
	})

	return commands, nil
}

// ParseCommand parses a single command line
func (p *Parser) ParseCommand(line string) (*mdwast.Command, error) {
	return ParseCommand(line)
}

// Parse splits text on line feeds and parses every non-ignorable line into
// a command. The first error aborts parsing and no commands are returned.
func Parse(text string) ([]*mdwast.Command, error) {
	var commands []*mdwast.Command

	for i, line := range strings.Split(text, "\n") {
		if IsIgnorable(line) {
			continue
		}

		cmd, err := parseCommand([]rune(line), i+1)
		if err != nil {
			return nil, withLine(err, i+1)
		}
		commands = append(commands, cmd)
	}

	return commands, nil
}

// ParseCommand parses one line into a command. Arguments are scanned from
// the rune right after the command name.
func ParseCommand(line string) (*mdwast.Command, error) {
	return parseCommand([]rune(line), 0)
}

// ParseCommandName returns the command name at the start of line, after
// any leading spaces
func ParseCommandName(line string) (string, error) {
	name, _, err := parseCommandName([]rune(line))
	return name, err
}

// ParseCommandArguments parses the arguments of line starting at rune offset
func ParseCommandArguments(line string, offset int) ([]mdwast.Argument, error) {
	return parseArguments([]rune(line), offset, 0)
}

// ParseParenthesis parses the nested command whose opening parenthesis is
// at rune offset. It returns the command and the number of runes consumed,
// both parentheses included. An unbalanced parenthesis runs to the end of
// the line.
func ParseParenthesis(line string, offset int) (*mdwast.Command, int, error) {
	inner, consumed := scanParenthesis([]rune(line), offset)
	cmd, err := parseCommand(inner, 0)
	if err != nil {
		return nil, 0, err
	}
	return cmd, consumed, nil
}

func parseCommand(src []rune, line int) (*mdwast.Command, error) {
	name, end, err := parseCommandName(src)
	if err != nil {
		return nil, err
	}

	args, err := parseArguments(src, end, line)
	if err != nil {
		return nil, err
	}

	return &mdwast.Command{Name: name, Arguments: args, Line: line}, nil
}

// parseCommandName returns the name and the rune offset just past it
func parseCommandName(src []rune) (string, int, error) {
	start := startSpacesOffset(src)
	if start >= len(src) || !charset.IsUpper(src[start]) {
		return "", 0, syntaxError(ErrMsgStartUppercase, start)
	}

	end := start + 1
	for ; end < len(src); end++ {
		r := src[end]

		if charset.IsSpace(r) {
			break
		}

		if charset.IsUpper(r) && src[end-1] != '-' {
			return "", 0, syntaxError(ErrMsgHyphenated, end)
		}

		if r == '-' {
			if end+1 >= len(src) || !(charset.IsUpper(src[end+1]) || charset.IsDigit(src[end+1])) {
				return "", 0, syntaxError(ErrMsgWordStart, end)
			}
		}
	}

	return string(src[start:end]), end, nil
}

func parseArguments(src []rune, offset, line int) ([]mdwast.Argument, error) {
	args := []mdwast.Argument{}

	for i := offset; i < len(src); {
		r := src[i]

		switch {
		case charset.IsSpace(r):
			i++

		case r == '(':
			inner, consumed := scanParenthesis(src, i)
			cmd, err := parseCommand(inner, line)
			if err != nil {
				return nil, err
			}
			args = append(args, cmd)
			i += consumed

		case r == '"':
			value, consumed := scanStringLiteral(src, i)
			args = append(args, mdwast.StringArg(value))
			i += consumed

		default:
			token, consumed := scanBareToken(src, i)
			args = append(args, mdwast.StringArg(token))
			i += consumed
		}
	}

	return args, nil
}

func syntaxError(message string, column int) *mdwerror.Error {
	return mdwerror.NewSyntaxError(message).
		WithOperation("parser.ParseCommandName").
		WithDetail("column", column+1)
}

// withLine records the 1-based source line on a syntax error
func withLine(err error, line int) error {
	if e, ok := err.(*mdwerror.Error); ok {
		return e.WithDetail("line", line)
	}
	return err
}
