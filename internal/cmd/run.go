// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/base2/internal/exitcode"
	"github.com/aibor/base2/internal/radix"
)

const localConfigFile = ".base2-args"

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	slog.Debug("Converting number",
		slog.Uint64("number", flags.Number),
		slog.String("method", string(flags.Method)))

	digits, err := flags.Method.Format(flags.Number)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	_, err = fmt.Fprintf(cfg.Stdout, "%s\n%s\n", radix.Header(flags.Number), digits)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func handleParseArgsError(err error, stdout io.Writer) error {
	switch {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	case errors.Is(err, ErrHelp):
		return nil
	case errors.Is(err, ErrMissingNumber):
		fmt.Fprintln(stdout, ErrMissingNumber.Error())
		return exitcode.Error(exitcode.Usage)
	// Version requested but not available, which is not a usage error.
	case errors.Is(err, ErrReadBuildInfo):
		return err
	// ParseArgs already prints errors, so we just exit.
	case errors.Is(err, &ParseArgsError{}):
		return exitcode.Error(exitcode.Usage)
	default:
		return err
	}
}

func handleRunError(err error) int {
	// Exit code errors have been reported already.
	if !errors.Is(err, exitcode.Error(0)) {
		slog.Error(err.Error())
	}

	return exitcode.From(err)
}

// Run is the main entry point for the CLI command.
//
// The first element of args is the program name.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	if len(args) > 0 {
		args = args[1:]
	}

	flags, err := newFlags(args, cfg)
	if err != nil {
		err = handleParseArgsError(err, cfg.Stdout)
		if err == nil {
			return exitcode.OK
		}

		return handleRunError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return exitcode.OK
}
