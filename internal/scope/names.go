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
	"iter"
	"slices"
)

// Names is a grow-only set of names that remembers insertion order.
//
// The zero value is an empty set ready to use.
type Names struct {
	order []string
	index map[string]struct{}
}

// Add inserts name and reports whether it was not already present.
func (n *Names) Add(name string) bool {
	if n.Has(name) {
		return false
	}

	if n.index == nil {
		n.index = make(map[string]struct{})
	}

	n.index[name] = struct{}{}
	n.order = append(n.order, name)

	return true
}

// Has reports whether name is in the set.
func (n *Names) Has(name string) bool {
	_, ok := n.index[name]

	return ok
}

// Len returns the number of names in the set.
func (n *Names) Len() int { return len(n.order) }

// All yields the names in insertion order.
func (n *Names) All() iter.Seq[string] { return slices.Values(n.order) }

// Slice returns a copy of the names in insertion order.
func (n *Names) Slice() []string { return slices.Clone(n.order) }
