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

package run

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/varalias/internal/explore"
	"fillmore-labs.com/varalias/internal/report"
	"fillmore-labs.com/varalias/internal/rewrite"
	"fillmore-labs.com/varalias/internal/scope"
	"fillmore-labs.com/varalias/tree"
)

// Run executes both passes over prog, renaming its variables in place.
func (r *Options) Run(ctx context.Context, prog *tree.Program) rewrite.Result {
	ctx, task := trace.NewTask(ctx, "VarAlias")
	defer task.End()

	// Stage 1: Discover scopes and classify their variables, the registry must be complete before renaming
	reg := r.Explore(ctx, prog)

	// Stage 2: Replace renamable variables by their aliases
	return r.Rewrite(ctx, prog, reg)
}

// Explore runs the exploration pass and writes the scope listing, if configured.
func (r *Options) Explore(ctx context.Context, prog *tree.Program) *scope.Registry {
	logger := r.logger()

	reg := explore.Stage{
		Behavior: r.Behavior,
		Logger:   logger,
	}.Explore(ctx, prog)

	logger.LogAttrs(ctx, slog.LevelDebug, "Explored program",
		slog.Int("scopes", reg.Len()), slog.Uint64("behavior", uint64(r.Behavior.Value())))

	if r.Listing != nil {
		style := report.Style{Color: r.Color}
		if err := style.WriteScopes(ctx, r.Listing, reg); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "Can't write scope listing", slog.Any("error", err))
		}
	}

	return reg
}

// Rewrite runs the rename pass with a registry produced by [Options.Explore].
func (r *Options) Rewrite(ctx context.Context, prog *tree.Program, reg *scope.Registry) rewrite.Result {
	logger := r.logger()

	result := rewrite.Stage{
		Alias:  r.Alias,
		Logger: logger,
	}.Rewrite(ctx, prog, reg)

	logger.LogAttrs(ctx, slog.LevelDebug, "Renamed variables",
		slog.Int("occurrences", result.Occurrences),
		slog.Int("renamings", result.Renamings),
		slog.Int("collisions", result.Collisions),
		slog.Int("alias_length", r.Alias.Len()))

	return result
}
