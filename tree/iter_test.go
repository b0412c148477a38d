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

package tree_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/varalias/tree"
)

func TestVariables(t *testing.T) {
	t.Parallel()

	prog, err := Unmarshal([]byte(document))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	var got []string
	for v := range Variables(prog) {
		got = append(got, v.Name)
	}

	want := []string{"w", "h", "a", "w", "h", "a", "a", "i", "v", "v", "db", "done", "name"}
	if !slices.Equal(got, want) {
		t.Errorf("Got variables %q, want %q", got, want)
	}
}

func TestChildrenOrder(t *testing.T) {
	t.Parallel()

	subject, key, value := &Variable{Name: "s"}, &Variable{Name: "k"}, &Variable{Name: "v"}
	stmt := &Echo{}

	loop := &Foreach{Subject: subject, Key: key, Value: value, Body: []Node{stmt}}

	if got, want := slices.Collect(Children(loop)), []Node{subject, key, value, stmt}; !slices.Equal(got, want) {
		t.Errorf("Got children %v, want %v", got, want)
	}

	loop.Key = nil
	if got, want := slices.Collect(Children(loop)), []Node{subject, value, stmt}; !slices.Equal(got, want) {
		t.Errorf("Got children %v, want %v", got, want)
	}

	var param *Param

	fn := &Function{Name: "f", Params: []*Param{param, {Var: key}}, Body: []Node{stmt}}

	children := slices.Collect(Children(fn))
	if len(children) != 2 || children[1] != stmt {
		t.Errorf("Got children %v, want parameter and statement", children)
	}
}

func TestPreorderStop(t *testing.T) {
	t.Parallel()

	prog, err := Unmarshal([]byte(document))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	n := 0
	for range Preorder(prog) {
		n++
		if n == 3 {
			break
		}
	}

	if n != 3 {
		t.Errorf("Got %d nodes, want 3", n)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		node Node
		want string
	}{
		{&Program{}, "program"},
		{&MethodCall{}, "method_call"},
		{&Variable{}, "var"},
		{&Property{}, "prop"},
		{&Global{}, "global"},
	}

	for _, tt := range tests {
		if got := tt.node.Kind().String(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.node, got, tt.want)
		}
	}

	if got, want := Kind(200).String(), "Kind(200)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
