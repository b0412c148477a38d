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
	"flag"

	"fillmore-labs.com/varalias/internal/config"
)

// RegisterFlags binds the configuration of r to command line flags.
// A nil flag set defaults to the program's command line.
func (r *Renamer) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	o := r.opts

	flags.TextVar(&o.Alias.Algorithm, "algorithm", o.Alias.Algorithm, "digest `algorithm` for aliases: sha1 or blake3")
	flags.IntVar(&o.Alias.Bytes, "digest-bytes", o.Alias.Bytes, "truncate the digest to `n` bytes, 0 uses all")

	flags.Var(newBehaviorValue(&o.Behavior, config.TaintDynamicCalls),
		"dynamic-calls", "keep names in scopes calling functions like extract or compact")
	flags.Var(newBehaviorValue(&o.Behavior, config.TaintVariableVariables),
		"variable-variables", "keep names in scopes using variable variables")
}
