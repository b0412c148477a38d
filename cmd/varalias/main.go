// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command varalias renames the local variables of PHP program trees to opaque aliases.
//
// Usage:
//
//	varalias [flags] tree.yaml...
//
// Each argument is a program tree in the YAML notation of package tree. varalias
// reports how many variables of each tree it renamed; with -v it also prints the
// alias of every renamed name, with -list the scopes found.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"fillmore-labs.com/varalias/renamer"
	"fillmore-labs.com/varalias/tree"
)

func main() {
	c := command{
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  colorTerminal(os.Stderr),
	}

	os.Exit(c.run(context.Background(), os.Args[1:]))
}

// colorTerminal reports whether f is a terminal that should get colored output.
func colorTerminal(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type command struct {
	stdout, stderr io.Writer
	color          bool
}

func (c command) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("varalias", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] tree.yaml...\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}

	config := fs.String("config", "", "read settings from YAML `file`, flags take precedence")
	list := fs.Bool("list", false, "write the scope listing to stderr")
	verbose := fs.Bool("v", false, "write the aliases of renamed names to stdout")

	r := renamer.New()
	r.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *config != "" {
		settings, err := renamer.LoadSettings(*config)
		if err != nil {
			fmt.Fprintf(c.stderr, "varalias: %v\n", err)

			return exitError
		}

		applySettings(r, fs, settings)
	}

	r.Apply(renamer.WithLogger(logger), renamer.WithColor(c.color))

	if *list {
		r.Apply(renamer.WithScopeListing(c.stderr))
	}

	status := exitOK

	for _, name := range fs.Args() {
		if err := c.process(ctx, r, name, *verbose); err != nil {
			fmt.Fprintf(c.stderr, "varalias: %v\n", err)

			status = exitError
		}
	}

	return status
}

// applySettings configures r from the settings file, keeping values of flags set on the command line.
func applySettings(r *renamer.Renamer, fs *flag.FlagSet, settings renamer.Settings) {
	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	r.Apply(settings.Options()...)

	for name, value := range explicit {
		_ = fs.Set(name, value) // already parsed successfully
	}
}

func (c command) process(ctx context.Context, r *renamer.Renamer, name string, verbose bool) error {
	prog, err := tree.ReadFile(name)
	if err != nil {
		return err
	}

	a := r.Explore(ctx, prog)

	if verbose {
		if err := r.WriteRenames(ctx, c.stdout, a); err != nil {
			return err
		}
	}

	result := r.Rewrite(ctx, prog, a)

	_, err = fmt.Fprintf(c.stdout, "%s: renamed %d names at %d occurrences, %d kept after alias collisions\n",
		name, result.Renamings, result.Occurrences, result.Collisions)

	return err
}
