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

package parser

import (
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/token"
	"github.com/nickg/nvcfront/internal/tree"
)

// parseEntityDecl implements:
//
//	entity_decl ::= "entity" ID "is"
//	                [ "generic" "(" interface_list ")" ";" ]
//	                [ "port"    "(" interface_list ")" ";" ]
//	                { attribute_decl | attribute_spec }
//	                [ "begin" { concurrent_assertion } ]
//	                "end" [ "entity" ] [ ID ] ";"
func (p *Parser) parseEntityDecl() *tree.Node {
	defer p.begin("entity declaration")()

	p.consume(token.Entity)
	name := p.parseIdent()
	p.consume(token.Is)

	n := tree.New(tree.KEntityDecl)
	n.Ident = name

	if p.optional(token.Generic) {
		p.consume(token.LParen)
		n.Generics = p.parseInterfaceList(true)
		p.consume(token.RParen)
		p.consume(token.Semi)
	}
	if p.optional(token.Port) {
		p.consume(token.LParen)
		n.Ports = p.parseInterfaceList(false)
		p.consume(token.RParen)
		p.consume(token.Semi)
	}

	for p.scan(token.Attribute) {
		n.Decls = append(n.Decls, p.parseAttribute())
	}

	if p.optional(token.Begin) {
		for !p.scan(token.End, token.EOF) {
			n.Stmts = append(n.Stmts, p.parseConcurrentAssertion())
		}
	}

	p.consume(token.End)
	p.optional(token.Entity)
	if p.scan(token.Ident) {
		p.parseIdent()
	}
	p.consume(token.Semi)

	n.Span = p.currentLoc()
	return n
}

// parseArchitectureBody implements:
//
//	architecture_body ::= "architecture" ID "of" ID "is"
//	                      { signal_decl }
//	                      "begin" { concurrent_stmt } "end"
//	                      [ "architecture" ] [ ID ] ";"
func (p *Parser) parseArchitectureBody() *tree.Node {
	defer p.begin("architecture body")()

	p.consume(token.Architecture)
	name := p.parseIdent()
	p.consume(token.Of)
	entity := p.parseIdent()
	p.consume(token.Is)

	n := tree.New(tree.KArchitecture)
	n.Ident = name
	n.Ident2 = entity

	for p.scan(token.Signal) {
		n.Decls = append(n.Decls, p.parseSignalDecl()...)
	}

	p.consume(token.Begin)
	for !p.scan(token.End, token.EOF) {
		n.Stmts = append(n.Stmts, p.parseConcurrentStmt())
	}
	p.consume(token.End)
	p.optional(token.Architecture)
	if p.scan(token.Ident) {
		p.parseIdent()
	}
	p.consume(token.Semi)

	n.Span = p.currentLoc()
	return n
}

// parseInterfaceList parses a semicolon-separated interface_list, used by
// both generic and port clauses. isGeneric only affects the default mode
// (generics have no direction and are left at ModeIn).
func (p *Parser) parseInterfaceList(isGeneric bool) []*tree.Node {
	defer p.begin("interface list")()

	var decls []*tree.Node
	decls = append(decls, p.parseInterfaceElement(isGeneric)...)
	for p.optional(token.Semi) {
		decls = append(decls, p.parseInterfaceElement(isGeneric)...)
	}
	return decls
}

// parseInterfaceElement parses one `id_list : [mode] subtype_indication [
// ":=" expression ]` group, producing one KPortDecl per identifier so that
// each carries the same type and span.
func (p *Parser) parseInterfaceElement(isGeneric bool) []*tree.Node {
	defer p.begin("interface element")()

	var names []ident.ID
	names = append(names, p.parseIdent())
	for p.optional(token.Comma) {
		names = append(names, p.parseIdent())
	}
	p.consume(token.Colon)

	mode := tree.ModeIn
	if !isGeneric {
		mode = p.parseOptionalMode()
	}

	typeMark := p.parseSubtypeIndication()

	var def *tree.Node
	if p.optional(token.Assign) {
		def = p.parseExpr()
	}

	span := p.currentLoc()
	decls := make([]*tree.Node, len(names))
	for i, nm := range names {
		d := tree.New(tree.KPortDecl)
		d.Ident = nm
		d.Type = typeMark
		d.SubKind = int(mode)
		d.Value = def
		d.Span = span
		decls[i] = d
	}
	return decls
}

func (p *Parser) parseOptionalMode() tree.PortMode {
	switch p.peek().Kind {
	case token.In:
		p.consume(token.In)
		return tree.ModeIn
	case token.Out:
		p.consume(token.Out)
		return tree.ModeOut
	case token.Inout:
		p.consume(token.Inout)
		return tree.ModeInOut
	case token.Buffer:
		p.consume(token.Buffer)
		return tree.ModeBuffer
	case token.Linkage:
		p.consume(token.Linkage)
		return tree.ModeLinkage
	default:
		return tree.ModeIn
	}
}

// parseSubtypeIndication parses a type mark: a (possibly selected)
// identifier, optionally followed by a range constraint. Constraints are
// not retained on the tree beyond being consumed: the grammar subset has no
// use for them since type-checking is out of scope.
func (p *Parser) parseSubtypeIndication() *tree.Node {
	defer p.begin("subtype indication")()

	idTok := p.consume(token.Ident)
	mark := tree.NewUnresolvedRef(idTok.Span, ident.New(idTok.Value.Str))
	for p.optional(token.Dot) {
		idTok = p.consume(token.Ident)
		mark = tree.NewUnresolvedRef(idTok.Span, ident.New(idTok.Value.Str))
	}

	if p.optional(token.Range) {
		p.parseExpr()
		if p.optional(token.To) {
			p.parseExpr()
		} else if p.optional(token.Downto) {
			p.parseExpr()
		}
	}
	return mark
}

// parseSignalDecl implements signal_decl ::= "signal" id_list ":"
// subtype_indication [ ":=" expression ] ";", producing one KSignalDecl per
// identifier.
func (p *Parser) parseSignalDecl() []*tree.Node {
	defer p.begin("signal declaration")()

	p.consume(token.Signal)
	var names []ident.ID
	names = append(names, p.parseIdent())
	for p.optional(token.Comma) {
		names = append(names, p.parseIdent())
	}
	p.consume(token.Colon)
	typeMark := p.parseSubtypeIndication()

	var def *tree.Node
	if p.optional(token.Assign) {
		def = p.parseExpr()
	}
	p.consume(token.Semi)

	span := p.currentLoc()
	decls := make([]*tree.Node, len(names))
	for i, nm := range names {
		d := tree.New(tree.KSignalDecl)
		d.Ident = nm
		d.Type = typeMark
		d.Value = def
		d.Span = span
		decls[i] = d
	}
	return decls
}

// parseVariableDecl implements variable_decl ::= "variable" id_list ":"
// subtype_indication [ ":=" expression ] ";", producing one KVarDecl per
// identifier.
func (p *Parser) parseVariableDecl() []*tree.Node {
	defer p.begin("variable declaration")()

	p.consume(token.Variable)
	var names []ident.ID
	names = append(names, p.parseIdent())
	for p.optional(token.Comma) {
		names = append(names, p.parseIdent())
	}
	p.consume(token.Colon)
	typeMark := p.parseSubtypeIndication()

	var def *tree.Node
	if p.optional(token.Assign) {
		def = p.parseExpr()
	}
	p.consume(token.Semi)

	span := p.currentLoc()
	decls := make([]*tree.Node, len(names))
	for i, nm := range names {
		d := tree.New(tree.KVarDecl)
		d.Ident = nm
		d.Type = typeMark
		d.Value = def
		d.Span = span
		decls[i] = d
	}
	return decls
}

// parseAttribute implements attribute_decl | attribute_spec, both
// introduced by the "attribute" keyword and disambiguated by what follows
// the attribute's name: ":" is a declaration, "of" is a specification.
func (p *Parser) parseAttribute() *tree.Node {
	defer p.begin("attribute")()

	p.consume(token.Attribute)
	name := p.parseIdent()

	if p.optional(token.Colon) {
		typeMark := p.parseSubtypeIndication()
		p.consume(token.Semi)
		n := tree.New(tree.KAttrDecl)
		n.Ident = name
		n.Type = typeMark
		n.Span = p.currentLoc()
		return n
	}

	p.consume(token.Of)
	n := tree.New(tree.KAttrSpec)
	n.Ident = name
	n.Ident2 = p.parseIdent()
	if p.optional(token.Colon) {
		// entity_class, e.g. "signal" or "type"; recorded only as a string
		// attribute since nothing downstream inspects it.
		n.SetAttr("class", p.peek().Kind.String())
		p.la.advance()
	}
	p.consume(token.Is)
	n.Value = p.parseExpr()
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}
