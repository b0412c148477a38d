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

// Package tracker tracks the enclosing class and function during tree traversal.
//
// A [Context] is an immutable value: entering a class or function body returns
// a new value for the children, and leaving it is implicit when the traversal
// returns. Both the explorer and the rewriter derive contexts with [Enter], so they
// agree on the current scope of every node.
package tracker

import (
	"fillmore-labs.com/varalias/internal/scope"
	"fillmore-labs.com/varalias/tree"
)

// Context holds the class and function stacks of a traversal position.
type Context struct {
	classes, functions *frame
}

// frame is an element of a persistent stack.
type frame struct {
	name   string
	parent *frame
}

func (f *frame) top() string {
	if f == nil {
		return ""
	}

	return f.name
}

func (f *frame) depth() int {
	n := 0
	for ; f != nil; f = f.parent {
		n++
	}

	return n
}

// Main returns the context of top-level code.
func Main() Context { return Context{} }

// EnterClass returns the context inside the body of the named class.
func (c Context) EnterClass(name string) Context {
	c.classes = &frame{name: name, parent: c.classes}

	return c
}

// EnterFunction returns the context inside the body of the named function.
func (c Context) EnterFunction(name string) Context {
	c.functions = &frame{name: name, parent: c.functions}

	return c
}

// Class returns the innermost class name, empty outside of classes.
func (c Context) Class() string { return c.classes.top() }

// Function returns the innermost function name, empty outside of functions.
func (c Context) Function() string { return c.functions.top() }

// Key returns the key of the current scope.
func (c Context) Key() scope.Key {
	return scope.Key{Function: c.Function(), Class: c.Class()}
}

// Depth returns the number of enclosing class and function bodies.
func (c Context) Depth() int { return c.classes.depth() + c.functions.depth() }

// Enter returns the context for the children of n.
func Enter(c Context, n tree.Node) Context {
	switch n := n.(type) {
	case *tree.Class:
		return c.EnterClass(n.Name)

	case *tree.Function:
		return c.EnterFunction(n.Name)

	default:
		return c
	}
}
