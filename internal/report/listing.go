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

// Package report writes human-readable descriptions of the analysis results.
//
// The output is advisory only; renaming never depends on it.
package report

import (
	"context"
	"fmt"
	"io"
	"runtime/trace"
	"strings"
	"text/tabwriter"

	"fillmore-labs.com/varalias/alias"
	"fillmore-labs.com/varalias/internal/rewrite"
	"fillmore-labs.com/varalias/internal/scope"
)

// Style selects the terminal decoration of the output.
type Style struct {
	// Color enables ANSI colors.
	Color bool
}

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func (s Style) paint(color, text string) string {
	if !s.Color {
		return text
	}

	return color + text + ansiReset
}

// WriteScopes lists every scope of the registry with its taint status, parameters and locals.
func (s Style) WriteScopes(ctx context.Context, w io.Writer, reg *scope.Registry) error {
	defer trace.StartRegion(ctx, "WriteScopes").End()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SCOPE\tPARAMS\tLOCALS\tSTATUS")

	for sc := range reg.All() {
		status := s.paint(ansiGreen, "renamable")
		if sc.IncludesFile() {
			status = s.paint(ansiRed, "includes file")
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			sc.Key(), concatNames(sc.FormalParams.Slice()), concatNames(sc.LocalVars.Slice()), status)
	}

	return tw.Flush()
}

// WriteRenames lists the aliases assigned in every scope, and the names kept because of alias collisions.
func (s Style) WriteRenames(ctx context.Context, w io.Writer, reg *scope.Registry, gen alias.Generator) error {
	defer trace.StartRegion(ctx, "WriteRenames").End()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for sc := range reg.All() {
		plan, dropped := rewrite.NewPlan(sc, gen)
		if len(plan) == 0 && len(dropped) == 0 {
			continue
		}

		for _, names := range [...]*scope.Names{&sc.FormalParams, &sc.LocalVars} {
			for name := range names.All() {
				if to, ok := plan[name]; ok {
					fmt.Fprintf(tw, "%s\t$%s\t$%s\n", sc.Key(), name, to)
				}
			}
		}

		for _, name := range dropped {
			fmt.Fprintf(tw, "%s\t$%s\t%s\n", sc.Key(), name, s.paint(ansiRed, "(collision)"))
		}
	}

	return tw.Flush()
}

// concatNames formats a list of variable names into a human-readable string (e.g., "$a, $b and $c").
func concatNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			separator := ", "
			if i == len(names)-1 {
				separator = " and "
			}

			all.WriteString(separator) // ignore error
		}

		all.WriteByte('$')    // ignore error
		all.WriteString(name) // ignore error
	}

	return all.String()
}
