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

package renamer

import (
	"context"
	"io"

	"fillmore-labs.com/varalias/internal/report"
	"fillmore-labs.com/varalias/internal/rewrite"
	"fillmore-labs.com/varalias/internal/run"
	"fillmore-labs.com/varalias/tree"
)

// Result summarizes a rename pass.
type Result = rewrite.Result

// Renamer is a configured variable renamer.
type Renamer struct {
	opts *run.Options
}

// New creates a new [Renamer].
// It allows for programmatic configuration using [Option]; command line tools
// additionally bind the configuration to flags with [Renamer.RegisterFlags].
func New(opts ...Option) *Renamer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Renamer{opts: r}
}

// Apply changes the configuration of r.
func (r *Renamer) Apply(opts ...Option) {
	Options(opts).apply(r.opts)
}

// Run explores prog and renames its variables in place.
func (r *Renamer) Run(ctx context.Context, prog *tree.Program) Result {
	return r.opts.Run(ctx, prog)
}

// Explore analyzes the scopes of prog without modifying it.
func (r *Renamer) Explore(ctx context.Context, prog *tree.Program) *Analysis {
	return &Analysis{registry: r.opts.Explore(ctx, prog)}
}

// Rewrite renames the variables of prog in place, using an analysis of the same tree.
// A nil analysis renames nothing.
func (r *Renamer) Rewrite(ctx context.Context, prog *tree.Program, a *Analysis) Result {
	if a == nil {
		return Result{}
	}

	return r.opts.Rewrite(ctx, prog, a.registry)
}

// Alias returns the name renamable variables named name are replaced with.
func (r *Renamer) Alias(name string) string {
	return r.opts.Alias.Alias(name)
}

// WriteRenames writes the planned renames of every scope of the analysis.
func (r *Renamer) WriteRenames(ctx context.Context, w io.Writer, a *Analysis) error {
	if a == nil {
		return nil
	}

	return report.Style{Color: r.opts.Color}.WriteRenames(ctx, w, a.registry, r.opts.Alias)
}
