// Copyright 2026 The nvcfront Authors.
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

package tree

import (
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/loc"
)

// NewIntLiteral builds an integer literal node at span.
func NewIntLiteral(span loc.Span, v int64) *Node {
	n := New(KLiteral)
	n.Span = span
	n.SubKind = int(LInt)
	n.IntVal = v
	return n
}

// NewRealLiteral builds a real literal node at span.
func NewRealLiteral(span loc.Span, v float64) *Node {
	n := New(KLiteral)
	n.Span = span
	n.SubKind = int(LReal)
	n.RealVal = v
	return n
}

// NewNullLiteral builds the "null" literal node at span.
func NewNullLiteral(span loc.Span) *Node {
	n := New(KLiteral)
	n.Span = span
	n.SubKind = int(LNull)
	return n
}

// NewUnresolvedRef builds a reference node that carries only a name; it has
// not yet been bound to a declaration.
func NewUnresolvedRef(span loc.Span, name ident.ID) *Node {
	n := New(KRef)
	n.Span = span
	n.Ident = name
	return n
}

// NewResolvedRef builds a reference node bound to decl, taking decl's
// identifier as its own.
func NewResolvedRef(span loc.Span, decl *Node) *Node {
	n := New(KRef)
	n.Span = span
	n.Ident = decl.Ident
	n.Referent = decl
	n.Type = decl.Type
	return n
}

// NewBuiltinFunc builds a function declaration node with no body, tagged
// with the given builtin operator name (e.g. "add", "not", "agg_low").
func NewBuiltinFunc(name ident.ID, builtin string) *Node {
	n := New(KFuncDecl)
	n.Ident = name
	n.SetAttr("builtin", builtin)
	return n
}

// NewFCall builds a function-call node invoking referent with the given
// positional argument expressions, each wrapped in a positional
// association.
func NewFCall(span loc.Span, referent *Node, args ...*Node) *Node {
	n := New(KFCall)
	n.Span = span
	n.Ident = referent.Ident
	n.Referent = referent
	n.Params = make([]*Node, len(args))
	for i, a := range args {
		n.Params[i] = NewAssocPositional(a)
	}
	return n
}

// NewVarDecl builds a variable declaration with an optional initialiser
// expression (nil if there is none).
func NewVarDecl(name ident.ID, typeMark, init *Node) *Node {
	n := New(KVarDecl)
	n.Ident = name
	n.Type = typeMark
	n.Value = init
	return n
}

// NewFuncParam builds a formal parameter declaration for a function body,
// carrying only the name and type mark a constant-folding call needs.
func NewFuncParam(name ident.ID, typeMark *Node) *Node {
	n := New(KVarDecl)
	n.Ident = name
	n.Type = typeMark
	return n
}

// NewFuncBody builds a user function declaration with a body: a
// declarative part and a sequence of statements, addressed by the
// constant-folding interpreter rather than the built-in folder.
func NewFuncBody(name ident.ID, params, decls, stmts []*Node) *Node {
	n := New(KFuncBody)
	n.Ident = name
	n.Params = params
	n.Decls = decls
	n.Stmts = stmts
	return n
}

// NewAssocPositional wraps value in a positional association.
func NewAssocPositional(value *Node) *Node {
	n := New(KAssoc)
	n.SubKind = int(APositional)
	n.Value = value
	return n
}

// NewAssocNamed wraps value in a named association keyed by key.
func NewAssocNamed(key, value *Node) *Node {
	n := New(KAssoc)
	n.SubKind = int(ANamed)
	n.Key = key
	n.Value = value
	return n
}

// NewAssocRanged wraps value in a ranged association over [left, right] in
// the given direction.
func NewAssocRanged(left, right *Node, dir Direction, value *Node) *Node {
	n := New(KAssoc)
	n.SubKind = int(ARanged)
	n.Left = left
	n.Right = right
	n.Dir = dir
	n.Value = value
	return n
}

// NewAssocOthers wraps value in an "others" association.
func NewAssocOthers(value *Node) *Node {
	n := New(KAssoc)
	n.SubKind = int(AOthers)
	n.Value = value
	return n
}

// NewEnumLit builds an enumeration literal declaration node with the given
// ordinal, tagged with the canonical dotted name of its type (e.g.
// "STD.STANDARD.BOOLEAN"). The built-in folder uses the tag to recognise
// booleans without a full type system.
func NewEnumLit(name ident.ID, ordinal int64, typeName string) *Node {
	n := New(KEnumLit)
	n.Ident = name
	n.IntVal = ordinal
	n.SetAttr("type", typeName)
	return n
}

// NewAggregate builds an aggregate node from its associations.
func NewAggregate(span loc.Span, assocs ...*Node) *Node {
	n := New(KAggregate)
	n.Span = span
	n.Assocs = assocs
	return n
}
