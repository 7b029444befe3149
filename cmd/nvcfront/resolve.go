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

package main

import (
	"strings"

	"github.com/nickg/nvcfront/internal/tree"
)

// binaryBuiltins maps a two-argument operator spelling to the built-in
// folder's opcode name.
var binaryBuiltins = map[string]string{
	"+": "add", "-": "sub", "*": "mul", "/": "div",
	"=": "eq", "/=": "neq", ">": "gt", "<": "lt", "<=": "leq", ">=": "geq",
	"and": "and", "or": "or", "xor": "xor", "nand": "nand", "nor": "nor", "xnor": "xnor",
}

// unaryBuiltins maps a one-argument operator spelling to its opcode. "+"
// and "-" are identity/negation here; the two-argument table above covers
// addition and subtraction. "abs" and "**" are deliberately absent: spec.md
// lists them only as grammar-level placeholders in the factor production,
// not as members of the built-in opcode set internal/eval.FoldCall
// implements, so an "abs" call stays unresolved rather than being folded
// under the wrong semantics.
var unaryBuiltins = map[string]string{
	"+": "identity", "-": "neg", "not": "not",
}

// resolveOperators is a toy stand-in for real name resolution: it walks a
// parsed tree and binds every still-unresolved quoted-operator call to a
// built-in function declaration, purely by spelling and argument count.
// It does not attempt overload resolution, type checking, or binding of
// ordinary (non-operator) calls to a declaration - it exists only so this
// command can demonstrate constant folding end to end on parser output.
// A real front end's semantic-analysis pass is the out-of-scope collaborator
// that would replace this.
func resolveOperators(n *tree.Node) {
	if n == nil {
		return
	}
	if n.Kind == tree.KFCall && n.Referent == nil {
		if builtin, ok := operatorBuiltin(n); ok {
			n.Referent = tree.NewBuiltinFunc(n.Ident, builtin)
		}
	}

	resolveOperators(n.Value)
	resolveOperators(n.Target)
	resolveOperators(n.Left)
	resolveOperators(n.Right)
	resolveOperators(n.Key)
	resolveOperators(n.After)
	for _, c := range n.Stmts {
		resolveOperators(c)
	}
	for _, c := range n.ElseStmts {
		resolveOperators(c)
	}
	for _, c := range n.Decls {
		resolveOperators(c)
	}
	for _, c := range n.Params {
		resolveOperators(c)
	}
	for _, c := range n.Assocs {
		resolveOperators(c)
	}
	for _, c := range n.Waveforms {
		resolveOperators(c)
	}
	for _, c := range n.Triggers {
		resolveOperators(c)
	}
	for _, c := range n.Ports {
		resolveOperators(c)
	}
	for _, c := range n.Generics {
		resolveOperators(c)
	}
}

// operatorBuiltin reports the built-in opcode for call, if its identifier
// is a quoted operator spelling this shim knows how to bind.
func operatorBuiltin(call *tree.Node) (string, bool) {
	spelling := call.Ident.String()
	if len(spelling) < 2 || spelling[0] != '"' || spelling[len(spelling)-1] != '"' {
		return "", false
	}
	op := strings.ToLower(spelling[1 : len(spelling)-1])

	switch len(call.Params) {
	case 1:
		name, ok := unaryBuiltins[op]
		return name, ok
	case 2:
		name, ok := binaryBuiltins[op]
		return name, ok
	default:
		return "", false
	}
}
