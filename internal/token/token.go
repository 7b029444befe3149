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

// Package token defines the terminal vocabulary the parser consumes and a
// small reference Scanner that produces it. The scanner is an external
// collaborator of the parser: the grammar driver only ever asks a Scanner
// for the "next token", never how that token was recognised.
package token

import (
	"fmt"

	"github.com/nickg/nvcfront/internal/loc"
)

// Kind is a closed tagged set of terminal kinds: keywords, punctuation, and
// the five value-bearing kinds (identifier, integer, real, string,
// character).
type Kind int

const (
	EOF Kind = iota

	// Value-bearing kinds.
	Ident   // identifier
	Int     // integer literal
	Real    // real literal
	String  // string literal
	CharLit // character literal, e.g. 'a'

	// Keywords.
	Entity
	Is
	End
	Generic
	Port
	Constant
	Component
	Configuration
	Architecture
	Of
	Begin
	For
	Type
	To
	All
	In
	Out
	Inout
	Buffer
	Linkage
	Bus
	Unaffected
	Signal
	Downto
	Process
	Postponed
	Wait
	Report
	Variable
	If
	Range
	Subtype
	Units
	Package
	Library
	Use
	Null
	Function
	Impure
	Pure
	Return
	Array
	Others
	Assert
	Severity
	On
	Map
	Then
	Else
	Elsif
	Body
	While
	Loop
	After
	Alias
	Attribute
	Procedure
	Exit
	Next
	When
	Case
	Label
	Inertial
	Transport
	Reject
	Block
	With
	Select
	Generate
	Access
	File
	Open
	Until
	Record
	New
	Shared
	And
	Or
	Nand
	Nor
	Xor
	Xnor
	Mod
	Rem
	Sll
	Srl
	Abs
	Not

	// Punctuation and operators.
	LParen
	RParen
	Semi
	Assign // :=
	Colon
	Comma
	Dot
	Tick // '
	Bar
	LBracket
	RBracket
	Box   // <>
	Arrow // =>
	Eq
	Neq
	Lt
	Leq
	Gt
	Geq
	Plus
	Minus
	Amp
	Times
	Over // /
	Pow  // **
)

var names = map[Kind]string{
	EOF: "end of file", Ident: "identifier", Int: "integer", Real: "real",
	String: "string", CharLit: "character literal",
	Entity: "entity", Is: "is", End: "end", Generic: "generic",
	Port: "port", Constant: "constant", Component: "component",
	Configuration: "configuration", Architecture: "architecture", Of: "of",
	Begin: "begin", For: "for", Type: "type", To: "to", All: "all", In: "in",
	Out: "out", Inout: "inout", Buffer: "buffer", Linkage: "linkage",
	Bus: "bus", Unaffected: "unaffected",
	Signal: "signal", Downto: "downto", Process: "process",
	Postponed: "postponed", Wait: "wait", Report: "report",
	Variable: "variable", If: "if", Range: "range", Subtype: "subtype",
	Units: "units", Package: "package", Library: "library", Use: "use",
	Null: "null", Function: "function", Impure: "impure", Pure: "pure",
	Return: "return", Array: "array", Others: "others", Assert: "assert",
	Severity: "severity", On: "on", Map: "map", Then: "then", Else: "else",
	Elsif: "elsif", Body: "body", While: "while", Loop: "loop",
	After: "after", Alias: "alias", Attribute: "attribute",
	Procedure: "procedure", Exit: "exit", Next: "next", When: "when",
	Case: "case", Label: "label", Inertial: "inertial",
	Transport: "transport", Reject: "reject", Block: "block", With: "with",
	Select: "select", Generate: "generate", Access: "access", File: "file",
	Open: "open", Until: "until", Record: "record", New: "new",
	Shared: "shared", And: "and", Or: "or", Nand: "nand", Nor: "nor",
	Xor: "xor", Xnor: "xnor", Mod: "mod", Rem: "rem", Sll: "sll", Srl: "srl",
	Abs: "abs", Not: "not",
	LParen: "(", RParen: ")", Semi: ";", Assign: ":=", Colon: ":",
	Comma: ",", Dot: ".", Tick: "'", Bar: "|", LBracket: "[",
	RBracket: "]", Box: "<>", Arrow: "=>", Eq: "=", Neq: "/=", Lt: "<",
	Leq: "<=", Gt: ">", Geq: ">=", Plus: "+", Minus: "-", Amp: "&",
	Times: "*", Over: "/", Pow: "**",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps the reserved-word spelling to its Kind. Anything not found
// here that matches an identifier shape is a plain Ident.
var Keywords = map[string]Kind{
	"entity": Entity, "is": Is, "end": End, "generic": Generic, "port": Port,
	"constant": Constant, "component": Component, "configuration": Configuration,
	"architecture": Architecture, "of": Of, "begin": Begin, "for": For,
	"type": Type, "to": To, "all": All, "in": In, "out": Out, "inout": Inout,
	"buffer": Buffer, "linkage": Linkage,
	"bus": Bus, "unaffected": Unaffected, "signal": Signal, "downto": Downto,
	"process": Process, "postponed": Postponed, "wait": Wait, "report": Report,
	"variable": Variable, "if": If, "range": Range, "subtype": Subtype,
	"units": Units, "package": Package, "library": Library, "use": Use,
	"null": Null, "function": Function, "impure": Impure, "pure": Pure,
	"return": Return, "array": Array, "others": Others, "assert": Assert,
	"severity": Severity, "on": On, "map": Map, "then": Then, "else": Else,
	"elsif": Elsif, "body": Body, "while": While, "loop": Loop, "after": After,
	"alias": Alias, "attribute": Attribute, "procedure": Procedure,
	"exit": Exit, "next": Next, "when": When, "case": Case, "label": Label,
	"inertial": Inertial, "transport": Transport, "reject": Reject,
	"block": Block, "with": With, "select": Select, "generate": Generate,
	"access": Access, "file": File, "open": Open, "until": Until,
	"record": Record, "new": New, "shared": Shared, "and": And, "or": Or,
	"nand": Nand, "nor": Nor, "xor": Xor, "xnor": Xnor, "mod": Mod, "rem": Rem,
	"sll": Sll, "srl": Srl, "abs": Abs, "not": Not,
}

// Value carries the payload of a value-bearing token, mirroring the
// scanner's yylval convention of filling {s, n, d} for identifier/integer/
// real/string tokens.
type Value struct {
	Str  string
	Int  int64
	Real float64
}

// Token is a single lexical unit: a kind, its source span, and (for
// value-bearing kinds) the literal payload it carries.
type Token struct {
	Kind  Kind
	Value Value
	Span  loc.Span
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, String, CharLit:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value.Str)
	case Int:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value.Int)
	case Real:
		return fmt.Sprintf("%s(%g)", t.Kind, t.Value.Real)
	default:
		return t.Kind.String()
	}
}
