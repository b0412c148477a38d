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

/*
Package renamer replaces local PHP variable names with opaque aliases.

A [Renamer] runs two passes over a program tree. The first pass discovers every
function and method scope and classifies its variables: formal parameters, locals
(names whose first occurrence is a plain assignment target or a foreach binding)
and everything else. The second pass replaces parameters and locals by a
deterministic alias derived from a digest of the name.

Scopes that include other files are never touched, since the included code may
access any variable by name. The top-level scope is treated this way, too.

	r := renamer.New(renamer.WithDigestBytes(8))
	result := r.Run(ctx, prog)

Hosts that want to inspect the analysis before renaming call [Renamer.Explore]
and [Renamer.Rewrite] separately. The explore result must be used with the same,
unmodified tree.
*/
package renamer
