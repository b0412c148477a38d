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

package tree

import "iter"

// Children yields the direct children of n in evaluation order, skipping nil children.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		each := func(nodes ...Node) bool {
			for _, c := range nodes {
				if isNil(c) {
					continue
				}

				if !yield(c) {
					return false
				}
			}

			return true
		}

		switch n := n.(type) {
		// keep-sorted start newline_separated=yes
		case *Assign:
			each(n.Target, n.Value)

		case *Attribute:
			each(n.Default)

		case *Binary:
			each(n.Left, n.Right)

		case *Call:
			each(n.Args...)

		case *Class:
			each(n.Members...)

		case *Echo:
			each(n.Args...)

		case *Foreach:
			_ = each(n.Subject, n.Key, n.Value) && each(n.Body...)

		case *Function:
			for _, p := range n.Params {
				if p != nil && !yield(p) {
					return
				}
			}

			each(n.Body...)

		case *Global:
			for _, v := range n.Vars {
				if v != nil && !yield(v) {
					return
				}
			}

		case *If:
			_ = each(n.Cond) && each(n.Then...) && each(n.Else...)

		case *Index:
			each(n.Base, n.Index)

		case *MethodCall:
			_ = each(n.Object) && each(n.Args...)

		case *New:
			each(n.Args...)

		case *Param:
			if n.Var != nil && !yield(n.Var) {
				return
			}

			each(n.Default)

		case *Program:
			each(n.Stmts...)

		case *Property:
			each(n.Object)

		case *Return:
			each(n.Value)

		case *Unary:
			each(n.Operand)

		case *VarVar:
			each(n.Name)

		case *While:
			_ = each(n.Cond) && each(n.Body...)
			// keep-sorted end
		}
	}
}

// Preorder yields n and all its descendants in depth-first preorder.
func Preorder(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if isNil(n) {
		return true
	}

	if !yield(n) {
		return false
	}

	for c := range Children(n) {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

// Variables yields all variable references below n in preorder.
func Variables(n Node) iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		for c := range Preorder(n) {
			if v, ok := c.(*Variable); ok && !yield(v) {
				return
			}
		}
	}
}

// isNil reports whether n is nil or a typed nil pointer of a variable or parameter.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true

	case *Variable:
		return n == nil

	case *Param:
		return n == nil

	default:
		return false
	}
}
