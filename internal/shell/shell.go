// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shell implements the line-oriented REPL of go-lightpack.
//
// Every input line is a command name followed by an optional argument,
// for example "brightness 40" or "profile Movie night". Commands run
// against a [service.LightService], so the shell works the same in direct
// and remote mode.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
)

const prompt = "lightpack> "

var errUnknownCommand = errors.New("unknown command")

type Shell struct {
	light  service.LightService
	editor LineEditor
	out    io.Writer
	logger *logger.Logger
}

func New(light service.LightService, editor LineEditor, out io.Writer, logger *logger.Logger) *Shell {
	return &Shell{
		light:  light,
		editor: editor,
		out:    out,
		logger: logger,
	}
}

// Run reads and executes commands until quit, end of input or ctx is done.
// Command failures are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	defer s.editor.Close()

	fmt.Fprintln(s.out, `go-lightpack shell, type "help" for commands`)

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := s.editor.GetLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command failed: %w", err)
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			s.logger.Debug().Err(err).Str("line", line).Msg("command failed")
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. quit is true for "quit" and "exit".
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return false, nil
	}
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		s.printHelp()
		return false, nil
	}

	cmd, ok := lookup(name)
	if !ok {
		return false, fmt.Errorf("%w %q", errUnknownCommand, name)
	}
	return false, cmd.run(ctx, s, arg)
}

func (s *Shell) printHelp() {
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-22s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(s.out, "  %-22s %s\n", "help", "show this list")
	fmt.Fprintf(s.out, "  %-22s %s\n", "quit", "leave the shell")
}
