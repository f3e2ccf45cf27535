// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const pkg = "github.com/aibor/base2/cmd/base2"

var env map[string]string

func init() {
	env = make(map[string]string)

	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}

	if gobin != "" {
		p, err := filepath.Abs(gobin)
		if err == nil {
			gobin = p
		}
	}

	env["GOBIN"] = gobin
}

// Install base2 to gobin directory.
func Install() error {
	path := filepath.Join(env["GOBIN"], "base2")

	mod, err := target.Dir(path, "cmd", "internal")
	if err != nil {
		return err
	}

	if !mod {
		return nil
	}

	return sh.RunWith(env, "go", "install", pkg)
}

// Run unit tests with coverage.
func Test(verbose bool) error {
	args := []string{
		"test",
		"-race",
		"-cover",
		"-coverprofile", filepath.Join(os.TempDir(), "base2-cover.out"),
	}
	if verbose {
		args = append(args, "-v")
	}

	args = append(args, "./...")

	return sh.RunWithV(env, "go", args...)
}

// Convert a number with the installed binary as smoke test.
func Smoke(number string) error {
	mg.Deps(Install)

	out, err := sh.OutputWith(env, filepath.Join(env["GOBIN"], "base2"), number)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}

// Remove volatile files.
func Clean() error {
	return sh.Rm(env["GOBIN"])
}
