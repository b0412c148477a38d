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

// Package rewrite implements the second pass: replacing renamable variable names with their aliases.
package rewrite

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/varalias/alias"
	"fillmore-labs.com/varalias/internal/scope"
	"fillmore-labs.com/varalias/internal/tracker"
	"fillmore-labs.com/varalias/tree"
)

// Stage configures and runs the rename pass.
type Stage struct {
	// Alias generates the replacement names.
	Alias alias.Generator

	// Logger receives debug events, nil discards them.
	Logger *slog.Logger
}

// Result summarizes a rename pass.
type Result struct {
	// Occurrences is the number of variable references replaced.
	Occurrences int

	// Renamings is the number of names renamed, counted once per scope.
	Renamings int

	// Collisions is the number of renamable names kept because their alias is ambiguous.
	Collisions int
}

// Rewrite replaces every renamable variable reference in prog with its alias.
//
// The registry must be the complete result of exploring the same, unmodified program.
func (s Stage) Rewrite(ctx context.Context, prog *tree.Program, reg *scope.Registry) Result {
	defer trace.StartRegion(ctx, "Rewrite").End()

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := rewriter{
		ctx:      ctx,
		logger:   logger,
		registry: reg,
		alias:    s.Alias,
	}

	if prog != nil {
		r.walk(prog, tracker.Main())
	}

	return r.result
}

// rewriter holds the state of a single rename pass.
type rewriter struct {
	ctx      context.Context
	logger   *slog.Logger
	registry *scope.Registry
	alias    alias.Generator

	// plans are built on first use, a nil plan renames nothing.
	plans map[scope.Key]Plan

	result Result
}

// walk visits n and its descendants in the same order as the explorer.
func (r *rewriter) walk(n tree.Node, cx tracker.Context) {
	switch n := n.(type) {
	case nil:
		return

	case *tree.Variable:
		r.rename(n, cx)

		return
	}

	inner := tracker.Enter(cx, n)
	for c := range tree.Children(n) {
		r.walk(c, inner)
	}
}

func (r *rewriter) rename(v *tree.Variable, cx tracker.Context) {
	to, ok := r.plan(cx.Key())[v.Name]
	if !ok {
		return
	}

	v.Name = to
	r.result.Occurrences++
}

// plan returns the rename plan of the scope with the given key.
func (r *rewriter) plan(key scope.Key) Plan {
	if p, ok := r.plans[key]; ok {
		return p
	}

	if r.plans == nil {
		r.plans = make(map[scope.Key]Plan)
	}

	s := r.registry.Lookup(key)

	p, dropped := NewPlan(s, r.alias)
	r.plans[key] = p

	r.result.Renamings += len(p)
	r.result.Collisions += len(dropped)

	if s != nil {
		for _, name := range dropped {
			r.logger.LogAttrs(r.ctx, slog.LevelDebug, "Alias collision",
				slog.String("scope", key.String()), slog.String("name", name))
		}

		r.logger.LogAttrs(r.ctx, slog.LevelDebug, "Rename plan",
			slog.String("scope", key.String()), slog.Int("renamed", len(p)),
			slog.Bool("includes_file", s.IncludesFile()))
	}

	return p
}
