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

package config

// Behavior represents optional analysis behavior.
type Behavior uint8

const (
	// TaintDynamicCalls taints scopes calling functions that access local variables by name
	// (eval, extract, compact, get_defined_vars, parse_str).
	TaintDynamicCalls Behavior = 1 << iota

	// TaintVariableVariables taints scopes using variable variables ($$name).
	TaintVariableVariables
)

// Behaviors is a set of [Behavior] flags.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the default behavior: only file inclusion taints a scope.
func DefaultBehavior() Behaviors {
	return NewBitMask[Behavior]()
}
