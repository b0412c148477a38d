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
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/varalias/tree"
)

const document = `
- class:
    name: Shape
    members:
      - attribute: {name: sides, default: 4}
      - function:
          name: area
          params: [$w, {name: $h, default: 1, ref: true}]
          body:
            - assign: {target: $a, value: {binary: {op: "*", left: $w, right: $h}}}
            - assign: {target: $a, value: 2, op: "*="}
            - return: $a
- foreach:
    subject: {call: {name: range, args: [1, 10]}}
    key: $i
    value: $v
    ref: true
    body:
      - echo: [$v, ~]
- global: [$db]
- while:
    cond: {unary: {op: "!", operand: $done}}
    body:
      - assign: {target: {varvar: $name}, value: {new: {class: Shape}}}
- return:
`

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	prog, err := Unmarshal([]byte(document))
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if got, want := len(prog.Stmts), 5; got != want {
		t.Fatalf("Got %d statements, want %d", got, want)
	}

	class, ok := prog.Stmts[0].(*Class)
	if !ok || class.Name != "Shape" || len(class.Members) != 2 {
		t.Fatalf("Got %#v, want class Shape with two members", prog.Stmts[0])
	}

	fn, ok := class.Members[1].(*Function)
	if !ok || fn.Name != "area" || len(fn.Params) != 2 || len(fn.Body) != 3 {
		t.Fatalf("Got %#v, want method area", class.Members[1])
	}

	if p := fn.Params[1]; p.Var.Name != "h" || !p.ByRef || p.Default.(*Literal).Value != "1" {
		t.Errorf("Got parameter %#v, want $h by reference with default 1", p)
	}

	if a := fn.Body[0].(*Assign); a.Op != "" {
		t.Errorf("Got operator %q for plain assignment", a.Op)
	}

	if a := fn.Body[1].(*Assign); a.Op != "*=" {
		t.Errorf("Got operator %q, want *=", a.Op)
	}

	loop, ok := prog.Stmts[1].(*Foreach)
	if !ok || !loop.ByRef || loop.Key.(*Variable).Name != "i" {
		t.Fatalf("Got %#v, want foreach with key $i", prog.Stmts[1])
	}

	if echo := loop.Body[0].(*Echo); echo.Args[1].(*Literal).Value != "null" {
		t.Errorf("Got %#v, want null literal", echo.Args[1])
	}

	if ret := prog.Stmts[4].(*Return); ret.Value != nil {
		t.Errorf("Got return value %#v, want none", ret.Value)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "# nothing\n", "~\n", "[]\n"} {
		prog, err := Unmarshal([]byte(doc))
		if err != nil {
			t.Errorf("Unmarshal(%q) failed: %v", doc, err)

			continue
		}

		if len(prog.Stmts) != 0 {
			t.Errorf("Unmarshal(%q) = %d statements, want none", doc, len(prog.Stmts))
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, doc, want string
	}{
		{"not_a_sequence", "function: {name: f}\n", "expected a sequence"},
		{"unknown_kind", "- lambda: {}\n", `unknown node kind "lambda"`},
		{"two_kinds", "- {echo: [], return: ~}\n", "exactly one kind key"},
		{"unknown_field", "- function: {name: f, returns: int}\n", `unknown field "returns"`},
		{"missing_name", "- function: {params: [$a]}\n", `missing field "name"`},
		{"missing_target", "- assign: {value: 1}\n", `missing field "target"`},
		{"bad_param", "- function: {name: f, params: [a]}\n", "expected variable"},
		{"empty_variable", "- echo: [$]\n", "empty variable name"},
		{"empty_variable_variable", "- echo: [$$]\n", "empty variable name"},
		{"sigil_in_name", "- echo: [$a$b]\n", `invalid variable name "a$b"`},
		{"sigil_in_var", "- echo: [{var: $$x}]\n", `invalid variable name "$x"`},
		{"variable_variable_param", "- function: {name: f, params: [$$x]}\n", "expected variable, got varvar"},
		{"class_member", "- class: {name: C, members: [{echo: []}]}\n", "expected function or attribute"},
		{"param_kind", "- param: $a\n", "can't be used here"},
		{"bad_ref", "- foreach: {subject: $a, value: $b, ref: maybe}\n", `field "ref"`},
		{"yaml", "- [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unmarshal([]byte(tt.doc))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Got error %v, want %v", err, ErrSyntax)
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Got error %q, want %q", err, tt.want)
			}
		})
	}
}

func TestErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal([]byte("- echo: [$a]\n- bogus: 1\n"))

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Got error %v, want *Error", err)
	}

	if e.Line != 2 || e.Column != 3 {
		t.Errorf("Got position %d:%d, want 2:3", e.Line, e.Column)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	prog, err := Decode(strings.NewReader("- echo: [$a, {var: b}, {lit: $c}, $$d, $$$e]\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	args := prog.Stmts[0].(*Echo).Args

	if v, ok := args[1].(*Variable); !ok || v.Name != "b" {
		t.Errorf("Got %#v, want variable b", args[1])
	}

	if l, ok := args[2].(*Literal); !ok || l.Value != "$c" {
		t.Errorf("Got %#v, want literal $c", args[2])
	}

	if vv, ok := args[3].(*VarVar); !ok || vv.Name.(*Variable).Name != "d" {
		t.Errorf("Got %#v, want variable variable $$d", args[3])
	}

	outer, ok := args[4].(*VarVar)
	if !ok {
		t.Fatalf("Got %#v, want variable variable $$$e", args[4])
	}

	if inner, ok := outer.Name.(*VarVar); !ok || inner.Name.(*Variable).Name != "e" {
		t.Errorf("Got %#v, want nested variable variable $$e", outer.Name)
	}
}
