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

// Package scope records what the explorer learns about each function scope.
//
// Scopes are keyed by the flat (function, class) pair of the declaration; nested
// and anonymous functions are not modeled. A [Registry] is built once per run by
// the explorer and consumed read-only by the rewriter.
package scope

// Key identifies a scope.
type Key struct {
	// Function is the name of the function or method, empty for top-level code.
	Function string
	// Class is the name of the enclosing class, empty outside of classes.
	Class string
}

// MainKey is the key of the implicit top-level scope.
var MainKey = Key{}

// String returns a human-readable name for the scope.
func (k Key) String() string {
	switch {
	case k == MainKey:
		return "main"

	case k.Class == "":
		return k.Function

	default:
		return k.Class + "::" + k.Function
	}
}

// Scope is the naming context of one function or method body, or the top-level code.
//
// All name sets only grow, and the inclusion taint never reverts.
type Scope struct {
	key Key

	// FormalParams are names bound by the declared parameter list.
	FormalParams Names

	// LocalVars are names first encountered as a plain assignment target or a foreach binding.
	LocalVars Names

	// SeenVars are all names encountered in any role, in order of first occurrence.
	SeenVars Names

	// Globals are names imported with a global statement.
	Globals Names

	includesFile bool
}

// New creates an untainted scope with the given formal parameters.
func New(key Key, params ...string) *Scope {
	s := &Scope{key: key}
	for _, p := range params {
		s.FormalParams.Add(p)
	}

	return s
}

// NewMain creates the implicit top-level scope. It is tainted, since code
// outside the analyzed program may read or write global variables by name.
func NewMain() *Scope {
	s := New(MainKey)
	s.Taint()

	return s
}

// Key returns the immutable key of this scope.
func (s *Scope) Key() Key { return s.key }

// IncludesFile reports whether code that can't be analyzed may access variables of this scope by name.
func (s *Scope) IncludesFile() bool { return s.includesFile }

// Taint marks the scope as including external code.
func (s *Scope) Taint() { s.includesFile = true }

// Known reports whether name has been encountered in this scope in any role.
func (s *Scope) Known(name string) bool {
	return s.FormalParams.Has(name) || s.LocalVars.Has(name) || s.SeenVars.Has(name)
}

// Renamable reports whether all occurrences of name in this scope can be replaced by an alias.
func (s *Scope) Renamable(name string) bool {
	if s == nil || s.includesFile || s.Globals.Has(name) {
		return false
	}

	return s.FormalParams.Has(name) || s.LocalVars.Has(name)
}
