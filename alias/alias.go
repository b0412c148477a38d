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

// Package alias derives opaque, deterministic replacement names for identifiers.
//
// An alias is a cryptographic digest of the original name, encoded with two
// lowercase letters per digest byte. The result depends only on the name and the
// [Generator] configuration, never on scope, call order or a seed, so repeated
// runs over the same program produce the same aliases.
package alias

import (
	"crypto/sha1" //nolint:gosec // used for name obfuscation, not for security
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
)

// Algorithm selects the digest used for alias generation.
type Algorithm uint8

//go:generate go tool stringer -type Algorithm -linecomment

const (
	// SHA1 uses the 160-bit SHA-1 digest.
	SHA1 Algorithm = iota // sha1

	// BLAKE3 uses the 256-bit BLAKE3 digest.
	BLAKE3 // blake3
)

// ErrUnknownAlgorithm is returned by [ParseAlgorithm] for unsupported names.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// ParseAlgorithm returns the [Algorithm] with the given name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := range BLAKE3 + 1 {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = v

	return nil
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case BLAKE3:
		return 32

	default:
		return sha1.Size
	}
}

// Sum computes the digest of b.
func (a Algorithm) Sum(b []byte) []byte {
	switch a {
	case BLAKE3:
		sum := blake3.Sum256(b)

		return sum[:]

	default:
		sum := sha1.Sum(b)

		return sum[:]
	}
}

// Generator computes aliases.
//
// The zero value uses the full SHA-1 digest, producing 40 letter aliases.
type Generator struct {
	// Algorithm is the digest algorithm.
	Algorithm Algorithm

	// Bytes truncates the digest to its first Bytes bytes, yielding aliases of 2*Bytes letters.
	// Values outside (0, Algorithm.Size()] select the full digest.
	//
	// Short digests can be brute-forced to recover short original names.
	Bytes int
}

// Alias returns the alias for name.
func (g Generator) Alias(name string) string {
	sum := g.Algorithm.Sum([]byte(name))

	if n := g.Bytes; n > 0 && n < len(sum) {
		sum = sum[:n]
	}

	return Encode(sum)
}

// Len returns the length of the aliases produced by g.
func (g Generator) Len() int {
	if n := g.Bytes; n > 0 && n < g.Algorithm.Size() {
		return 2 * n
	}

	return 2 * g.Algorithm.Size()
}

// Of returns the alias for name using the full SHA-1 digest.
func Of(name string) string {
	return Generator{}.Alias(name)
}

// Alphabet contains the 16 letters used to encode digest nibbles.
const Alphabet = "abcdefghijklmnop"

// Encode converts a digest into letters, low nibble first, then high nibble of each byte.
func Encode(digest []byte) string {
	buf := make([]byte, 0, 2*len(digest))
	for _, b := range digest {
		buf = append(buf, Alphabet[b&0xF], Alphabet[b>>4])
	}

	return string(buf)
}
