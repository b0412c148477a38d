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

// Package testsource provides utilities for building program trees in tests.
//
// Tree fragments are written in the YAML notation understood by [tree.Unmarshal].
// Golden tests are stored as txtar archives holding the input tree and the
// expected result.
package testsource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/varalias/tree"
)

// Parse decodes a YAML tree fragment into a program.
//
// The source may be indented with tabs, as usual in Go raw string literals:
// the common tab indentation is removed and remaining leading tabs are replaced
// by four spaces each.
func Parse(tb testing.TB, src string) *tree.Program {
	tb.Helper()

	prog, err := tree.Unmarshal(Dedent(src))
	if err != nil {
		tb.Fatalf("Failed to parse tree %q: %v", src, err)
	}

	return prog
}

// Dedent converts tab-indented YAML into space-indented YAML.
func Dedent(src string) []byte {
	lines := strings.Split(src, "\n")

	common := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if n := leadingTabs(line); common < 0 || n < common {
			common = n
		}
	}

	common = max(common, 0)

	var buf bytes.Buffer
	buf.Grow(len(src))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			buf.WriteByte('\n')

			continue
		}

		n := leadingTabs(line)
		buf.WriteString(strings.Repeat("    ", n-common))
		buf.WriteString(line[n:])
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func leadingTabs(line string) int {
	return len(line) - len(strings.TrimLeft(line, "\t"))
}

// Archive is a golden test case.
type Archive struct {
	// Name is the base name of the archive file without extension.
	Name string

	// Comment is the archive comment, preceding the first file.
	Comment string

	files map[string][]byte
}

// ReadArchives reads all txtar archives matching pattern.
func ReadArchives(tb testing.TB, pattern string) []Archive {
	tb.Helper()

	paths, err := filepath.Glob(pattern)
	if err != nil {
		tb.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	if len(paths) == 0 {
		tb.Fatalf("No archives match %q", pattern)
	}

	archives := make([]Archive, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			tb.Fatalf("Can't read archive: %v", err)
		}

		ar := txtar.Parse(data)

		files := make(map[string][]byte, len(ar.Files))
		for _, f := range ar.Files {
			files[f.Name] = f.Data
		}

		archives = append(archives, Archive{
			Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Comment: strings.TrimSpace(string(ar.Comment)),
			files:   files,
		})
	}

	return archives
}

// Program decodes the archive file "tree.yaml".
func (a Archive) Program(tb testing.TB) *tree.Program {
	tb.Helper()

	data, ok := a.files["tree.yaml"]
	if !ok {
		tb.Fatalf("Archive %s has no tree.yaml", a.Name)
	}

	prog, err := tree.Unmarshal(data)
	if err != nil {
		tb.Fatalf("Archive %s: %v", a.Name, err)
	}

	return prog
}

// Lines returns the non-empty, trimmed lines of the named archive file.
func (a Archive) Lines(tb testing.TB, name string) []string {
	tb.Helper()

	data, ok := a.files[name]
	if !ok {
		tb.Fatalf("Archive %s has no %s", a.Name, name)
	}

	var lines []string

	for line := range strings.Lines(string(data)) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// Args returns the command line flags of the archive, taken from comment lines starting with "-".
// Other comment lines describe the test case.
func (a Archive) Args() []string {
	var args []string

	for line := range strings.Lines(a.Comment) {
		if line = strings.TrimSpace(line); strings.HasPrefix(line, "-") {
			args = append(args, strings.Fields(line)...)
		}
	}

	return args
}
