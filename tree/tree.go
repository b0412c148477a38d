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

// Kind identifies the variant of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment

const (
	KindInvalid    Kind = iota // invalid
	KindProgram                // program
	KindClass                  // class
	KindAttribute              // attribute
	KindFunction               // function
	KindParam                  // param
	KindAssign                 // assign
	KindForeach                // foreach
	KindCall                   // call
	KindMethodCall             // method_call
	KindNew                    // new
	KindVariable               // var
	KindVarVar                 // varvar
	KindProperty               // prop
	KindIndex                  // index
	KindLiteral                // lit
	KindBinary                 // binary
	KindUnary                  // unary
	KindEcho                   // echo
	KindReturn                 // return
	KindIf                     // if
	KindWhile                  // while
	KindGlobal                 // global
)

// Node is a program tree node. The set of implementations is closed.
type Node interface {
	// Kind reports the variant of this node.
	Kind() Kind

	node()
}

// Program is the root of a tree.
type Program struct {
	Stmts []Node
}

// Class is a class declaration.
type Class struct {
	Name string
	// Members are methods (*Function) and attributes (*Attribute).
	Members []Node
}

// Attribute is a class attribute declaration. Its name is not a variable reference.
type Attribute struct {
	Name    string
	Default Node
}

// Function is a function or method declaration.
type Function struct {
	Name   string
	Params []*Param
	Body   []Node
}

// Param is a formal parameter.
type Param struct {
	Var     *Variable
	Default Node
	ByRef   bool
}

// Assign is an assignment. An empty Op denotes a plain "=", otherwise it holds the
// compound operator ("+=", ".=", ...).
type Assign struct {
	Target Node
	Value  Node
	Op     string
	ByRef  bool
}

// Foreach is a foreach loop. Key may be nil.
type Foreach struct {
	Subject Node
	Key     Node
	Value   Node
	ByRef   bool
	Body    []Node
}

// Call is a call of a named function or language construct (include, require, ...).
type Call struct {
	Name string
	Args []Node
}

// MethodCall is a method invocation on an object.
type MethodCall struct {
	Object Node
	Name   string
	Args   []Node
}

// New is an object instantiation.
type New struct {
	Class string
	Args  []Node
}

// Variable is a variable reference. Name excludes the "$" sigil.
type Variable struct {
	Name string
}

// VarVar is a variable variable ($$name or ${expr}).
type VarVar struct {
	Name Node
}

// Property is a property fetch. The property name is not a variable reference.
type Property struct {
	Object Node
	Name   string
}

// Index is an array access. Index may be nil ($a[] = ...).
type Index struct {
	Base  Node
	Index Node
}

// Literal is a constant, string or any other leaf without variable references.
type Literal struct {
	Value string
}

// Binary is a binary operation.
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Unary is a unary operation.
type Unary struct {
	Op      string
	Operand Node
}

// Echo is an echo statement.
type Echo struct {
	Args []Node
}

// Return is a return statement. Value may be nil.
type Return struct {
	Value Node
}

// If is a conditional statement.
type If struct {
	Cond Node
	Then []Node
	Else []Node
}

// While is a while loop.
type While struct {
	Cond Node
	Body []Node
}

// Global imports global variables into the current function scope.
type Global struct {
	Vars []*Variable
}

func (*Program) Kind() Kind    { return KindProgram }
func (*Class) Kind() Kind      { return KindClass }
func (*Attribute) Kind() Kind  { return KindAttribute }
func (*Function) Kind() Kind   { return KindFunction }
func (*Param) Kind() Kind      { return KindParam }
func (*Assign) Kind() Kind     { return KindAssign }
func (*Foreach) Kind() Kind    { return KindForeach }
func (*Call) Kind() Kind       { return KindCall }
func (*MethodCall) Kind() Kind { return KindMethodCall }
func (*New) Kind() Kind        { return KindNew }
func (*Variable) Kind() Kind   { return KindVariable }
func (*VarVar) Kind() Kind     { return KindVarVar }
func (*Property) Kind() Kind   { return KindProperty }
func (*Index) Kind() Kind      { return KindIndex }
func (*Literal) Kind() Kind    { return KindLiteral }
func (*Binary) Kind() Kind     { return KindBinary }
func (*Unary) Kind() Kind      { return KindUnary }
func (*Echo) Kind() Kind       { return KindEcho }
func (*Return) Kind() Kind     { return KindReturn }
func (*If) Kind() Kind         { return KindIf }
func (*While) Kind() Kind      { return KindWhile }
func (*Global) Kind() Kind     { return KindGlobal }

func (*Program) node()    {}
func (*Class) node()      {}
func (*Attribute) node()  {}
func (*Function) node()   {}
func (*Param) node()      {}
func (*Assign) node()     {}
func (*Foreach) node()    {}
func (*Call) node()       {}
func (*MethodCall) node() {}
func (*New) node()        {}
func (*Variable) node()   {}
func (*VarVar) node()     {}
func (*Property) node()   {}
func (*Index) node()      {}
func (*Literal) node()    {}
func (*Binary) node()     {}
func (*Unary) node()      {}
func (*Echo) node()       {}
func (*Return) node()     {}
func (*If) node()         {}
func (*While) node()      {}
func (*Global) node()     {}
