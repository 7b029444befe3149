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

// Package eval implements the constant-folding evaluator: the built-in
// operator folder and the tree-walking interpreter for user function
// bodies, which cooperate over the value-table defined in this file.
package eval

import (
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/tree"
)

// ResultIdent is the sentinel binding a return statement uses to
// communicate its value back to the caller of a function body.
var ResultIdent = ident.New("result")

// frame is one scope of the value-table: a mapping from identifier to the
// tree it is bound to (a literal, a reference to an enumeration literal, or
// a folded aggregate). The original interpreter used a fixed-capacity
// inline array (16 slots) and treated overflow as a programming error; a
// map relaxes that into a growable scope, per the redesign note that the
// capacity was only ever a sanity threshold, not a contract.
type frame map[ident.ID]*tree.Node

// Table is the lexically-scoped stack of frames the interpreter binds
// function parameters and local variables into. A Table's zero value is
// an empty stack, ready to use.
type Table struct {
	frames []frame
}

// Push opens a new, empty frame on top of the stack.
func (t *Table) Push() {
	t.frames = append(t.frames, frame{})
}

// Pop discards the top frame and everything bound in it.
func (t *Table) Pop() {
	if len(t.frames) == 0 {
		return
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Bind sets name to value in the top frame, replacing any existing
// binding for name in that frame. Binding into an empty stack is a silent
// no-op, matching the behaviour when the evaluator runs with no active
// frame.
func (t *Table) Bind(name ident.ID, value *tree.Node) {
	if len(t.frames) == 0 {
		return
	}
	t.frames[len(t.frames)-1][name] = value
}

// Lookup searches frames top-down for name, returning its value and
// whether it was found.
func (t *Table) Lookup(name ident.ID) (*tree.Node, bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if v, ok := t.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}
