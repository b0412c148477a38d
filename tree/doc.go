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
Package tree defines the program tree the renaming passes operate on.

The tree is a closed set of node variants, one Go type per [Kind]. It models the
subset of PHP syntax that matters for variable scoping: function and method
declarations, classes, assignments, foreach bindings, calls and variable references.
Everything else a host parser produces can be folded into [Literal], [Binary] or
[Unary] nodes without affecting the analysis.

Hosts usually build trees directly. For tools and tests, [Unmarshal] reads a compact
YAML notation:

	- function:
	    name: foo
	    params: [$a]
	    body:
	      - assign: {target: $b, value: {binary: {op: "+", left: $a, right: 1}}}
	      - return: $b

Scalars starting with "$" are variables, all other scalars are literals.

The only field any pass writes to is [Variable.Name]; no nodes are ever added or removed.
*/
package tree
