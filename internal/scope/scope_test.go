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

package scope_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/varalias/internal/scope"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	main := NewMain()
	foo := New(Key{Function: "foo"}, "a")
	method := New(Key{Function: "foo", Class: "C"})

	for _, s := range []*Scope{main, foo, method} {
		if err := r.Insert(s); err != nil {
			t.Fatalf("Insert(%s) failed: %v", s.Key(), err)
		}
	}

	if err := r.Insert(New(Key{Function: "foo"})); !errors.Is(err, ErrDuplicateScope) {
		t.Errorf("Insert(duplicate) = %v, want %v", err, ErrDuplicateScope)
	}

	tests := []struct {
		name            string
		function, class string
		want            *Scope
	}{
		{"main", "", "", main},
		{"function", "foo", "", foo},
		{"method", "foo", "C", method},
		{"missing", "bar", "", nil},
		{"class_body", "", "C", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.Find(tt.function, tt.class); got != tt.want {
				t.Errorf("Find(%q, %q) = %p, want %p", tt.function, tt.class, got, tt.want)
			}
		})
	}

	if got, want := slices.Collect(r.All()), []*Scope{main, foo, method}; !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	if got, want := r.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestNilRegistry(t *testing.T) {
	t.Parallel()

	var r *Registry

	if s := r.Find("foo", ""); s != nil {
		t.Errorf("Find() on nil registry = %v, want nil", s)
	}

	if n := r.Len(); n != 0 {
		t.Errorf("Len() on nil registry = %d, want 0", n)
	}

	for s := range r.All() {
		t.Errorf("All() on nil registry yielded %v", s)
	}
}

func TestRenamable(t *testing.T) {
	t.Parallel()

	s := New(Key{Function: "f"}, "p")
	s.LocalVars.Add("l")
	s.LocalVars.Add("g")
	s.SeenVars.Add("r")
	s.Globals.Add("g")

	tests := []struct {
		name string
		want bool
	}{
		{"p", true},
		{"l", true},
		{"g", false},
		{"r", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		if got := s.Renamable(tt.name); got != tt.want {
			t.Errorf("Renamable(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}

	s.Taint()

	if !s.IncludesFile() {
		t.Fatal("Expected scope to be tainted")
	}

	for _, tt := range tests {
		if s.Renamable(tt.name) {
			t.Errorf("Renamable(%q) = true in tainted scope", tt.name)
		}
	}

	var none *Scope
	if none.Renamable("p") {
		t.Error("Renamable() on nil scope = true")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	var n Names

	for _, name := range []string{"b", "a", "b", "c", "a"} {
		n.Add(name)
	}

	if got, want := n.Slice(), []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("Slice() = %q, want %q", got, want)
	}

	if n.Add("a") {
		t.Error("Add() of present name reported insertion")
	}

	if !n.Has("c") || n.Has("d") {
		t.Error("Has() inconsistent with inserted names")
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{MainKey, "main"},
		{Key{Function: "foo"}, "foo"},
		{Key{Function: "area", Class: "Shape"}, "Shape::area"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
