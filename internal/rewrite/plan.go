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

package rewrite

import (
	"fillmore-labs.com/varalias/alias"
	"fillmore-labs.com/varalias/internal/scope"
)

// Plan maps the renamable names of a scope to their aliases.
type Plan map[string]string

// NewPlan computes the renames of s and the candidates dropped because of alias collisions.
//
// Renaming must keep distinct variables distinct: no two candidates may share an alias,
// and no alias may equal a name that stays unchanged. Dropping a candidate makes its
// name unchanged, so the check repeats until nothing is dropped.
func NewPlan(s *scope.Scope, gen alias.Generator) (Plan, []string) {
	if s == nil || s.IncludesFile() {
		return nil, nil
	}

	var candidates []string

	for _, names := range [...]*scope.Names{&s.FormalParams, &s.LocalVars} {
		for name := range names.All() {
			if s.Renamable(name) {
				candidates = append(candidates, name)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	p := make(Plan, len(candidates))
	for _, name := range candidates {
		p[name] = gen.Alias(name)
	}

	var dropped []string

	for {
		uses := make(map[string]int, len(p))
		for _, a := range p {
			uses[a]++
		}

		kept := func(name string) bool {
			_, renamed := p[name]

			return !renamed && s.Known(name)
		}

		var drop []string

		for _, name := range candidates {
			a, ok := p[name]
			if !ok {
				continue
			}

			if uses[a] > 1 || kept(a) {
				drop = append(drop, name)
			}
		}

		if len(drop) == 0 {
			break
		}

		for _, name := range drop {
			delete(p, name)
		}

		dropped = append(dropped, drop...)
	}

	return p, dropped
}
