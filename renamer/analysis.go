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
	"iter"

	"fillmore-labs.com/varalias/internal/scope"
)

// Analysis is the result of exploring a program.
type Analysis struct {
	registry *scope.Registry
}

// ScopeInfo describes a function or method scope.
type ScopeInfo struct {
	// Class is the name of the enclosing class, empty for functions and top-level code.
	Class string

	// Function is the name of the function or method, empty for top-level code.
	Function string

	// IncludesFile reports whether the scope includes external code. Its variables are never renamed.
	IncludesFile bool

	// Params are the formal parameter names.
	Params []string

	// Locals are the names introduced by assignment or foreach binding.
	Locals []string
}

// Scopes yields all scopes in the order of their declaration, starting with the top-level scope.
func (a *Analysis) Scopes() iter.Seq[ScopeInfo] {
	return func(yield func(ScopeInfo) bool) {
		if a == nil {
			return
		}

		for s := range a.registry.All() {
			info := ScopeInfo{
				Class:        s.Key().Class,
				Function:     s.Key().Function,
				IncludesFile: s.IncludesFile(),
				Params:       s.FormalParams.Slice(),
				Locals:       s.LocalVars.Slice(),
			}

			if !yield(info) {
				return
			}
		}
	}
}
