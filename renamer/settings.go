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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/varalias/alias"
)

// Settings represents the configuration file of a [Renamer].
// Unset fields keep their defaults.
type Settings struct {
	// Algorithm selects the digest algorithm.
	Algorithm *alias.Algorithm `json:"algorithm,omitzero" yaml:"algorithm,omitempty"`
	// DigestBytes truncates the digest.
	DigestBytes *int `json:"digest-bytes,omitzero" yaml:"digest-bytes,omitempty"`
	// DynamicCalls keeps the names of scopes calling functions that access variables by name.
	DynamicCalls *bool `json:"dynamic-calls,omitzero" yaml:"dynamic-calls,omitempty"`
	// VariableVariables keeps the names of scopes using variable variables.
	VariableVariables *bool `json:"variable-variables,omitzero" yaml:"variable-variables,omitempty"`
}

// LoadSettings reads the YAML settings file with the given name.
// Unknown fields are an error, an empty file yields empty settings.
func LoadSettings(name string) (Settings, error) {
	f, err := os.Open(name)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	return DecodeSettings(f)
}

// DecodeSettings reads YAML settings from r.
func DecodeSettings(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [Option] for a [Renamer].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Algorithm, WithAlgorithm)
	opts = appendOption(opts, s.DigestBytes, WithDigestBytes)
	opts = appendOption(opts, s.DynamicCalls, WithDynamicCalls)
	opts = appendOption(opts, s.VariableVariables, WithVariableVariables)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
