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

// Package tree is the shared data model between the parser and the
// constant-folding evaluator: the parser builds trees, the evaluator
// rewrites function-call nodes of a tree into literal nodes in place.
package tree

import (
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/loc"
)

// Node is a heap-allocated, identity-bearing AST node. Not every field is
// meaningful for every Kind; see the per-kind constructors in builder.go for
// which fields a given Kind actually populates.
type Node struct {
	Kind Kind
	Span loc.Span

	Ident  ident.ID // primary name, when the node has one
	Ident2 ident.ID // secondary name (e.g. architecture's entity name)

	Referent *Node // resolved declaration/body this node refers to
	Type     *Node // type mark, as an unresolved reference; nil when none was recorded

	SubKind int // literal kind, port mode, association kind, depending on Kind

	// Range/slice endpoints and direction, used by KAssoc (ranged) and
	// KArraySlice.
	Left, Right *Node
	Dir         Direction

	// Value is the single expression carried by a node when "the" value is
	// unambiguous: an association's associated expression, a waveform's
	// value, a declaration's initialiser, an if/while's condition, a
	// return's operand.
	Value *Node
	// Target is the assignment destination of KSignalAssign/KVarAssign.
	Target *Node
	// Key is the key expression of a named (KAssoc) association.
	Key *Node
	// After is a waveform's optional delay expression.
	After *Node

	// Literal payload for Kind == KLiteral; IntVal also holds a KEnumLit's
	// ordinal.
	IntVal  int64
	RealVal float64

	// Typed child collections. Only the ones relevant to Kind are non-nil in
	// practice, but all are addressable uniformly.
	Ports     []*Node
	Generics  []*Node
	Decls     []*Node
	Stmts     []*Node
	ElseStmts []*Node
	Params    []*Node
	Assocs    []*Node
	Waveforms []*Node
	Triggers  []*Node

	attrs map[string]any
}

// New allocates a bare node of the given kind. Constructors in builder.go
// build on top of this to populate the fields a particular production
// needs.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// Attr returns the attribute named key and whether it was set. The
// attribute map is deliberately small and string-keyed, rather than a
// field per rarely-used flag.
func (n *Node) Attr(key string) (any, bool) {
	if n.attrs == nil {
		return nil, false
	}
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets the attribute named key.
func (n *Node) SetAttr(key string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
}

// StrAttr is a convenience for attributes that carry a string, such as
// "builtin".
func (n *Node) StrAttr(key string) string {
	v, ok := n.Attr(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// BoolAttr is a convenience for boolean flag attributes, such as
// "postponed" or "is_report".
func (n *Node) BoolAttr(key string) bool {
	v, ok := n.Attr(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Builtin returns the builtin operator name of a function declaration, or
// "" if this is not a builtin (i.e. it has a body, or is unresolved).
func (n *Node) Builtin() string { return n.StrAttr("builtin") }

// LiteralKind returns the SubKind of a KLiteral node as a LiteralKind.
func (n *Node) LiteralKind() LiteralKind { return LiteralKind(n.SubKind) }

// PortMode returns the SubKind of a KPortDecl node as a PortMode.
func (n *Node) PortMode() PortMode { return PortMode(n.SubKind) }

// AssocKind returns the SubKind of a KAssoc node as an AssocKind.
func (n *Node) AssocKind() AssocKind { return AssocKind(n.SubKind) }
