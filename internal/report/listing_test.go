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

package report_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/varalias/alias"
	. "fillmore-labs.com/varalias/internal/report"
	"fillmore-labs.com/varalias/internal/scope"
)

func registry(t *testing.T) *scope.Registry {
	t.Helper()

	reg := scope.NewRegistry()

	main := scope.NewMain()
	main.LocalVars.Add("d")

	foo := scope.New(scope.Key{Function: "foo"}, "a")
	foo.LocalVars.Add("b")

	bar := scope.New(scope.Key{Function: "bar"})
	bar.Taint()

	g := scope.New(scope.Key{Function: "g", Class: "C"}, "b", "sum")

	for _, s := range []*scope.Scope{main, foo, bar, g} {
		if err := reg.Insert(s); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	return reg
}

func TestWriteScopes(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := (Style{}).WriteScopes(t.Context(), &buf, registry(t)); err != nil {
		t.Fatalf("WriteScopes failed: %v", err)
	}

	const want = "" +
		"SCOPE  PARAMS       LOCALS  STATUS\n" +
		"main   -            $d      includes file\n" +
		"foo    $a           $b      renamable\n" +
		"bar    -            -       includes file\n" +
		"C::g   $b and $sum  -       renamable\n"

	if got := buf.String(); got != want {
		t.Errorf("Got listing\n%s\nwant\n%s", got, want)
	}
}

func TestWriteScopesColor(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := (Style{Color: true}).WriteScopes(t.Context(), &buf, registry(t)); err != nil {
		t.Fatalf("WriteScopes failed: %v", err)
	}

	got := buf.String()

	for _, want := range []string{"\x1b[31mincludes file\x1b[0m", "\x1b[32mrenamable\x1b[0m"} {
		if !strings.Contains(got, want) {
			t.Errorf("Listing %q doesn't contain %q", got, want)
		}
	}
}

func TestWriteRenames(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := (Style{}).WriteRenames(t.Context(), &buf, registry(t), alias.Generator{Bytes: 1}); err != nil {
		t.Fatalf("WriteRenames failed: %v", err)
	}

	const want = "" +
		"foo   $a    $gi\n" +
		"foo   $b    $jo\n" +
		"C::g  $b    (collision)\n" +
		"C::g  $sum  (collision)\n"

	if got := buf.String(); got != want {
		t.Errorf("Got renames\n%s\nwant\n%s", got, want)
	}
}
