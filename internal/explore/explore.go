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

// Package explore implements the first pass: discovering function scopes and classifying their variables.
//
// The explorer visits every node of the program once and records for each scope:
//   - formal parameters
//   - locally introduced variables: names first encountered as a plain
//     assignment target or a foreach binding
//   - all variable names encountered in any role
//   - whether the scope includes external code
//
// The classification depends on traversal order: a name is local only when its
// very first encounter in the scope introduces it.
package explore

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/varalias/internal/config"
	"fillmore-labs.com/varalias/internal/scope"
	"fillmore-labs.com/varalias/internal/tracker"
	"fillmore-labs.com/varalias/tree"
)

// Stage configures and runs the exploration pass.
type Stage struct {
	// Behavior selects optional taint sources.
	Behavior config.Behaviors

	// Logger receives debug events, nil discards them.
	Logger *slog.Logger
}

// Explore builds the scope registry for prog.
// The registry always contains the tainted main scope.
func (s Stage) Explore(ctx context.Context, prog *tree.Program) *scope.Registry {
	defer trace.StartRegion(ctx, "Explore").End()

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := explorer{
		ctx:               ctx,
		logger:            logger,
		registry:          scope.NewRegistry(),
		dynamicCalls:      s.Behavior.Enabled(config.TaintDynamicCalls),
		variableVariables: s.Behavior.Enabled(config.TaintVariableVariables),
	}

	_ = e.registry.Insert(scope.NewMain()) // empty registry

	if prog != nil {
		e.walkAll(prog.Stmts, tracker.Main())
	}

	return e.registry
}

// explorer holds the state of a single exploration pass.
type explorer struct {
	ctx      context.Context
	logger   *slog.Logger
	registry *scope.Registry

	dynamicCalls, variableVariables bool
}

func (e *explorer) walkAll(nodes []tree.Node, cx tracker.Context) {
	for _, n := range nodes {
		e.walk(n, cx)
	}
}

// walk visits n and its descendants in evaluation order.
func (e *explorer) walk(n tree.Node, cx tracker.Context) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case nil:
		return

	case *tree.Assign:
		// Compound assignments read their target first
		if v, ok := n.Target.(*tree.Variable); ok && n.Op == "" {
			e.introduce(v.Name, cx)
		}

	case *tree.Call:
		if IsInclusion(n.Name) || (e.dynamicCalls && IsDynamicAccess(n.Name)) {
			e.taint(cx, n.Name)
		}

	case *tree.Foreach:
		e.walk(n.Subject, cx)

		// Bindings are introduced after the subject is evaluated
		for _, b := range [...]tree.Node{n.Key, n.Value} {
			if v, ok := b.(*tree.Variable); ok {
				e.introduce(v.Name, cx)
			}
		}

		e.walk(n.Key, cx)
		e.walk(n.Value, cx)
		e.walkAll(n.Body, cx)

		return

	case *tree.Function:
		e.declare(n, cx)

	case *tree.Global:
		if s := e.current(cx); s != nil {
			for _, v := range n.Vars {
				if v != nil {
					s.Globals.Add(v.Name)
				}
			}
		}

	case *tree.VarVar:
		if e.variableVariables {
			e.taint(cx, "$$")
		}

	case *tree.Variable:
		if s := e.current(cx); s != nil {
			s.SeenVars.Add(n.Name)
		}

		return
		// keep-sorted end
	}

	inner := tracker.Enter(cx, n)
	for c := range tree.Children(n) {
		e.walk(c, inner)
	}
}

// current returns the scope of the traversal context, or nil outside any known scope.
func (e *explorer) current(cx tracker.Context) *scope.Scope {
	return e.registry.Lookup(cx.Key())
}

// declare registers the scope of a function declaration.
func (e *explorer) declare(fn *tree.Function, cx tracker.Context) {
	key := tracker.Enter(cx, fn).Key()

	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		if p != nil && p.Var != nil {
			params = append(params, p.Var.Name)
		}
	}

	if err := e.registry.Insert(scope.New(key, params...)); err == nil {
		e.logger.LogAttrs(e.ctx, slog.LevelDebug, "Declared scope",
			slog.String("scope", key.String()), slog.Int("depth", cx.Depth()), slog.Int("params", len(params)))

		return
	}

	// The flat key can't tell multiple declarations apart, so their variables can't be renamed.
	s := e.registry.Lookup(key)
	for _, p := range params {
		s.FormalParams.Add(p)
	}

	s.Taint()

	e.logger.LogAttrs(e.ctx, slog.LevelDebug, "Ambiguous function declaration",
		slog.String("scope", key.String()))
}

// introduce records name as a local variable of the current scope, unless it was encountered before.
func (e *explorer) introduce(name string, cx tracker.Context) {
	s := e.current(cx)
	if s == nil || s.Known(name) || IsReserved(name) {
		return
	}

	s.LocalVars.Add(name)
}

// taint marks the current scope as including external code.
func (e *explorer) taint(cx tracker.Context, cause string) {
	s := e.current(cx)
	if s == nil || s.IncludesFile() {
		return
	}

	s.Taint()

	e.logger.LogAttrs(e.ctx, slog.LevelDebug, "Scope includes external code",
		slog.String("scope", s.Key().String()), slog.String("cause", cause))
}
