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

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSyntax is wrapped by all errors describing a malformed tree document.
var ErrSyntax = errors.New("invalid tree")

// Error is a tree decoding error at a specific document position.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap returns [ErrSyntax].
func (e *Error) Unwrap() error { return ErrSyntax }

func errorf(n *yaml.Node, format string, args ...any) error {
	return &Error{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// ReadFile reads and decodes the tree document in the named file.
func ReadFile(name string) (*Program, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	prog, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", name, err)
	}

	return prog, nil
}

// Decode reads a complete tree document from r.
func Decode(r io.Reader) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Unmarshal(data)
}

// Unmarshal decodes a tree document. The document is a sequence of statements;
// an empty document yields an empty program.
func Unmarshal(data []byte) (*Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &Program{}, nil
	}

	root := doc.Content[0]
	if root.ShortTag() == "!!null" {
		return &Program{}, nil
	}

	if root.Kind != yaml.SequenceNode {
		return nil, errorf(root, "expected a sequence of statements")
	}

	stmts, err := decodeList(root)
	if err != nil {
		return nil, err
	}

	return &Program{Stmts: stmts}, nil
}

// kindByName maps the document keys to node kinds.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, int(KindGlobal))
	for k := KindClass; k <= KindGlobal; k++ {
		m[k.String()] = k
	}

	return m
}()

func decodeNode(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return decodeScalar(n)

	case yaml.AliasNode:
		return decodeNode(n.Alias)

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, errorf(n, "node must have exactly one kind key, got %d", len(n.Content)/2)
		}

		key, value := n.Content[0], n.Content[1]

		kind, ok := kindByName[key.Value]
		if !ok {
			return nil, errorf(key, "unknown node kind %q", key.Value)
		}

		return decodeKind(kind, value)

	default:
		return nil, errorf(n, "expected scalar or mapping node")
	}
}

func decodeScalar(n *yaml.Node) (Node, error) {
	if n.ShortTag() == "!!null" {
		return &Literal{Value: "null"}, nil
	}

	if strings.HasPrefix(n.Value, "$") {
		return decodeSigil(n, n.Value)
	}

	return &Literal{Value: n.Value}, nil
}

// decodeSigil decodes $name as a variable, and $$name as a variable variable.
func decodeSigil(n *yaml.Node, value string) (Node, error) {
	name := value[1:]
	if strings.HasPrefix(name, "$") {
		inner, err := decodeSigil(n, name)
		if err != nil {
			return nil, err
		}

		return &VarVar{Name: inner}, nil
	}

	if err := checkVariableName(n, name); err != nil {
		return nil, err
	}

	return &Variable{Name: name}, nil
}

func checkVariableName(n *yaml.Node, name string) error {
	switch {
	case name == "":
		return errorf(n, "empty variable name")

	case strings.Contains(name, "$"):
		return errorf(n, "invalid variable name %q", name)

	default:
		return nil
	}
}

func decodeKind(kind Kind, n *yaml.Node) (Node, error) {
	switch kind {
	// keep-sorted start newline_separated=yes
	case KindAssign:
		return decodeAssign(n)

	case KindAttribute:
		f, err := fields(n, "name", "default")
		if err != nil {
			return nil, err
		}

		a := &Attribute{}
		a.Name, err = f.str("name")
		if err == nil {
			a.Default, err = f.node("default")
		}

		return a, err

	case KindBinary:
		f, err := fields(n, "op", "left", "right")
		if err != nil {
			return nil, err
		}

		b := &Binary{}
		b.Op, err = f.str("op")
		if err == nil {
			b.Left, err = f.required("left")
		}
		if err == nil {
			b.Right, err = f.required("right")
		}

		return b, err

	case KindCall:
		f, err := fields(n, "name", "args")
		if err != nil {
			return nil, err
		}

		c := &Call{}
		c.Name, err = f.requiredStr("name")
		if err == nil {
			c.Args, err = f.list("args")
		}

		return c, err

	case KindClass:
		return decodeClass(n)

	case KindEcho:
		args, err := decodeList(n)

		return &Echo{Args: args}, err

	case KindForeach:
		return decodeForeach(n)

	case KindFunction:
		return decodeFunction(n)

	case KindGlobal:
		vars, err := decodeVariables(n)

		return &Global{Vars: vars}, err

	case KindIf:
		f, err := fields(n, "cond", "then", "else")
		if err != nil {
			return nil, err
		}

		s := &If{}
		s.Cond, err = f.required("cond")
		if err == nil {
			s.Then, err = f.list("then")
		}
		if err == nil {
			s.Else, err = f.list("else")
		}

		return s, err

	case KindIndex:
		f, err := fields(n, "base", "index")
		if err != nil {
			return nil, err
		}

		x := &Index{}
		x.Base, err = f.required("base")
		if err == nil {
			x.Index, err = f.node("index")
		}

		return x, err

	case KindLiteral:
		if n.Kind != yaml.ScalarNode {
			return nil, errorf(n, "literal must be a scalar")
		}

		return &Literal{Value: n.Value}, nil

	case KindMethodCall:
		f, err := fields(n, "object", "name", "args")
		if err != nil {
			return nil, err
		}

		c := &MethodCall{}
		c.Object, err = f.required("object")
		if err == nil {
			c.Name, err = f.requiredStr("name")
		}
		if err == nil {
			c.Args, err = f.list("args")
		}

		return c, err

	case KindNew:
		f, err := fields(n, "class", "args")
		if err != nil {
			return nil, err
		}

		c := &New{}
		c.Class, err = f.requiredStr("class")
		if err == nil {
			c.Args, err = f.list("args")
		}

		return c, err

	case KindProperty:
		f, err := fields(n, "object", "name")
		if err != nil {
			return nil, err
		}

		p := &Property{}
		p.Object, err = f.required("object")
		if err == nil {
			p.Name, err = f.requiredStr("name")
		}

		return p, err

	case KindReturn:
		if isNull(n) {
			return &Return{}, nil
		}

		v, err := decodeNode(n)

		return &Return{Value: v}, err

	case KindUnary:
		f, err := fields(n, "op", "operand")
		if err != nil {
			return nil, err
		}

		u := &Unary{}
		u.Op, err = f.str("op")
		if err == nil {
			u.Operand, err = f.required("operand")
		}

		return u, err

	case KindVarVar:
		name, err := decodeNode(n)

		return &VarVar{Name: name}, err

	case KindVariable:
		if n.Kind != yaml.ScalarNode || strings.TrimPrefix(n.Value, "$") == "" {
			return nil, errorf(n, "variable name must be a non-empty scalar")
		}

		name := strings.TrimPrefix(n.Value, "$")
		if err := checkVariableName(n, name); err != nil {
			return nil, err
		}

		return &Variable{Name: name}, nil

	case KindWhile:
		f, err := fields(n, "cond", "body")
		if err != nil {
			return nil, err
		}

		w := &While{}
		w.Cond, err = f.required("cond")
		if err == nil {
			w.Body, err = f.list("body")
		}

		return w, err
		// keep-sorted end

	default:
		return nil, errorf(n, "node kind %s can't be used here", kind)
	}
}

func decodeAssign(n *yaml.Node) (*Assign, error) {
	f, err := fields(n, "target", "value", "op", "ref")
	if err != nil {
		return nil, err
	}

	a := &Assign{}
	a.Target, err = f.required("target")
	if err == nil {
		a.Value, err = f.required("value")
	}
	if err == nil {
		a.Op, err = f.str("op")
	}
	if err == nil {
		a.ByRef, err = f.boolean("ref")
	}

	if a.Op == "=" {
		a.Op = ""
	}

	return a, err
}

func decodeClass(n *yaml.Node) (*Class, error) {
	f, err := fields(n, "name", "members")
	if err != nil {
		return nil, err
	}

	c := &Class{}
	if c.Name, err = f.requiredStr("name"); err != nil {
		return nil, err
	}

	if c.Members, err = f.list("members"); err != nil {
		return nil, err
	}

	for i, m := range c.Members {
		switch m.(type) {
		case *Function, *Attribute:
		default:
			return nil, errorf(f.m["members"], "class member %d is a %s, expected function or attribute", i, m.Kind())
		}
	}

	return c, nil
}

func decodeForeach(n *yaml.Node) (*Foreach, error) {
	f, err := fields(n, "subject", "key", "value", "ref", "body")
	if err != nil {
		return nil, err
	}

	l := &Foreach{}
	l.Subject, err = f.required("subject")
	if err == nil {
		l.Key, err = f.node("key")
	}
	if err == nil {
		l.Value, err = f.required("value")
	}
	if err == nil {
		l.ByRef, err = f.boolean("ref")
	}
	if err == nil {
		l.Body, err = f.list("body")
	}

	return l, err
}

func decodeFunction(n *yaml.Node) (*Function, error) {
	f, err := fields(n, "name", "params", "body")
	if err != nil {
		return nil, err
	}

	fn := &Function{}
	if fn.Name, err = f.requiredStr("name"); err != nil {
		return nil, err
	}

	if p, ok := f.m["params"]; ok && !isNull(p) {
		for _, item := range elements(p) {
			param, err := decodeParam(item)
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)
		}
	}

	fn.Body, err = f.list("body")

	return fn, err
}

func decodeParam(n *yaml.Node) (*Param, error) {
	if n.Kind == yaml.ScalarNode {
		v, err := decodeVariable(n)

		return &Param{Var: v}, err
	}

	f, err := fields(n, "name", "default", "ref")
	if err != nil {
		return nil, err
	}

	name, ok := f.m["name"]
	if !ok {
		return nil, errorf(n, "parameter without name")
	}

	p := &Param{}
	p.Var, err = decodeVariable(name)
	if err == nil {
		p.Default, err = f.node("default")
	}
	if err == nil {
		p.ByRef, err = f.boolean("ref")
	}

	return p, err
}

func decodeVariables(n *yaml.Node) ([]*Variable, error) {
	var vars []*Variable

	for _, item := range elements(n) {
		v, err := decodeVariable(item)
		if err != nil {
			return nil, err
		}

		vars = append(vars, v)
	}

	return vars, nil
}

func decodeVariable(n *yaml.Node) (*Variable, error) {
	node, err := decodeNode(n)
	if err != nil {
		return nil, err
	}

	v, ok := node.(*Variable)
	if !ok {
		return nil, errorf(n, "expected variable, got %s", node.Kind())
	}

	return v, nil
}

func decodeList(n *yaml.Node) ([]Node, error) {
	if isNull(n) {
		return nil, nil
	}

	items := elements(n)
	nodes := make([]Node, 0, len(items))

	for _, item := range items {
		node, err := decodeNode(item)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// elements returns the items of a sequence node, or n itself for any other node.
func elements(n *yaml.Node) []*yaml.Node {
	if n.Kind == yaml.SequenceNode {
		return n.Content
	}

	return []*yaml.Node{n}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// nodeFields holds the fields of a mapping node.
type nodeFields struct {
	parent *yaml.Node
	m      map[string]*yaml.Node
}

func fields(n *yaml.Node, allowed ...string) (nodeFields, error) {
	if n.Kind != yaml.MappingNode {
		return nodeFields{}, errorf(n, "expected mapping with fields %s", strings.Join(allowed, ", "))
	}

	m := make(map[string]*yaml.Node, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		if !slices.Contains(allowed, key.Value) {
			return nodeFields{}, errorf(key, "unknown field %q", key.Value)
		}

		if _, ok := m[key.Value]; ok {
			return nodeFields{}, errorf(key, "duplicate field %q", key.Value)
		}

		m[key.Value] = value
	}

	return nodeFields{parent: n, m: m}, nil
}

func (f nodeFields) str(key string) (string, error) {
	n, ok := f.m[key]
	if !ok || isNull(n) {
		return "", nil
	}

	if n.Kind != yaml.ScalarNode {
		return "", errorf(n, "field %q must be a scalar", key)
	}

	return n.Value, nil
}

func (f nodeFields) requiredStr(key string) (string, error) {
	s, err := f.str(key)
	if err == nil && s == "" {
		err = errorf(f.parent, "missing field %q", key)
	}

	return s, err
}

func (f nodeFields) boolean(key string) (bool, error) {
	n, ok := f.m[key]
	if !ok || isNull(n) {
		return false, nil
	}

	var b bool
	if err := n.Decode(&b); err != nil {
		return false, errorf(n, "field %q: %v", key, err)
	}

	return b, nil
}

func (f nodeFields) node(key string) (Node, error) {
	n, ok := f.m[key]
	if !ok || isNull(n) {
		return nil, nil
	}

	return decodeNode(n)
}

func (f nodeFields) required(key string) (Node, error) {
	n, ok := f.m[key]
	if !ok {
		return nil, errorf(f.parent, "missing field %q", key)
	}

	return decodeNode(n)
}

func (f nodeFields) list(key string) ([]Node, error) {
	n, ok := f.m[key]
	if !ok {
		return nil, nil
	}

	return decodeList(n)
}
