// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/base2/internal/radix"
)

const (
	name = "base2"

	usageMessage = `Usage of 'base2':
    base2 [flags...] number

Prints the base-2 representation of the given non-negative decimal integer:
	base2 42

All base2 flags can also be provided via environment variable BASE2_ARGS:
	BASE2_ARGS="-method=powers -debug" base2 42

All base2 flags can also be provided via file ./.base2-args, with one
argument per line.
`
)

type flags struct {
	Number  uint64
	Method  radix.Method
	Debug   bool
	Version bool

	flagSet *flag.FlagSet
}

func newFlagSet(output io.Writer) *flags {
	flags := &flags{
		Method: radix.MethodDivision,
	}

	flags.initFlagset(output)

	return flags
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlagSet(output)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.Version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	// A missing number is reported without usage, so just return the error.
	if len(positionalArgs) < 1 {
		return ErrMissingNumber
	}

	if len(positionalArgs) > 1 {
		return f.fail("only one number may be given", nil)
	}

	f.Number, err = radix.ParseDecimal(positionalArgs[0])
	if err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.TextVar(
		&f.Method,
		"method",
		f.Method,
		"conversion algorithm: division, powers",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
