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

package scope

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicateScope is returned when inserting a scope whose key is already registered.
var ErrDuplicateScope = errors.New("duplicate scope")

// Registry is a flat collection of scopes.
type Registry struct {
	scopes map[Key]*Scope
	order  []*Scope
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{scopes: make(map[Key]*Scope)}
}

// Find returns the scope of the given function in the given class, or nil if there is none.
func (r *Registry) Find(function, class string) *Scope {
	return r.Lookup(Key{Function: function, Class: class})
}

// Lookup returns the scope with the given key, or nil if there is none.
func (r *Registry) Lookup(key Key) *Scope {
	if r == nil {
		return nil
	}

	return r.scopes[key]
}

// Insert adds a new scope.
func (r *Registry) Insert(s *Scope) error {
	if _, ok := r.scopes[s.key]; ok {
		return fmt.Errorf("%w %s", ErrDuplicateScope, s.key)
	}

	r.scopes[s.key] = s
	r.order = append(r.order, s)

	return nil
}

// All yields all scopes in insertion order.
func (r *Registry) All() iter.Seq[*Scope] {
	if r == nil {
		return func(func(*Scope) bool) {}
	}

	return slices.Values(r.order)
}

// Len returns the number of registered scopes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.order)
}
