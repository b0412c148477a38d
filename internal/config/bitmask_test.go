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

package config_test

import (
	"testing"

	. "fillmore-labs.com/varalias/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(TaintDynamicCalls)

	if !b.Enabled(TaintDynamicCalls) || b.Enabled(TaintVariableVariables) {
		t.Fatalf("NewBitMask(TaintDynamicCalls) = %08b", b.Value())
	}

	b.Set(TaintVariableVariables, true)
	b.Set(TaintDynamicCalls, false)

	if b.Enabled(TaintDynamicCalls) || !b.Enabled(TaintVariableVariables) {
		t.Errorf("Got flags %08b after Set, want %08b", b.Value(), TaintVariableVariables)
	}

	if d := DefaultBehavior(); d.Value() != 0 {
		t.Errorf("DefaultBehavior() = %08b, want none", d.Value())
	}
}
