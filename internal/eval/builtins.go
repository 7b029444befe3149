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

package eval

import (
	"github.com/nickg/nvcfront/internal/collections"
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/tree"
)

// stdBoolean is the canonical dotted name the folder recognises a boolean's
// type by; it is a tag on enumeration-literal nodes, not a real type
// system.
const stdBoolean = "STD.STANDARD.BOOLEAN"

var (
	falseLit = tree.NewEnumLit(ident.New("FALSE"), 0, stdBoolean)
	trueLit  = tree.NewEnumLit(ident.New("TRUE"), 1, stdBoolean)
)

// BoolRef produces a reference to the enumeration literal of
// STD.STANDARD.BOOLEAN with the given ordinal (0 = false, 1 = true).
func BoolRef(ordinal int64) *tree.Node {
	if ordinal != 0 {
		return tree.NewResolvedRef(loc.Invalid, trueLit)
	}
	return tree.NewResolvedRef(loc.Invalid, falseLit)
}

// asBool reports whether n is a reference to a STD.STANDARD.BOOLEAN
// enumeration literal, and if so its ordinal.
func asBool(n *tree.Node) (int64, bool) {
	if n.Kind != tree.KRef || n.Referent == nil {
		return 0, false
	}
	ref := n.Referent
	if ref.Kind != tree.KEnumLit || ref.StrAttr("type") != stdBoolean {
		return 0, false
	}
	return ref.IntVal, true
}

func isIntLit(n *tree.Node) bool {
	return n.Kind == tree.KLiteral && n.LiteralKind() == tree.LInt
}

func isRealLit(n *tree.Node) bool {
	return n.Kind == tree.KLiteral && n.LiteralKind() == tree.LReal
}

// foldedAggregate reports whether n is an aggregate every one of whose
// named keys and ranged endpoints is an integer literal - the precondition
// agg_low/agg_high's argument must satisfy.
func foldedAggregate(n *tree.Node) bool {
	if n.Kind != tree.KAggregate {
		return false
	}
	for _, a := range n.Assocs {
		switch a.AssocKind() {
		case tree.ANamed:
			if !isIntLit(a.Key) {
				return false
			}
		case tree.ARanged:
			if !isIntLit(a.Left) || !isIntLit(a.Right) {
				return false
			}
		}
	}
	return true
}

// FoldCall attempts to apply the named built-in operator to args,
// following a strict int -> logical -> aggregate -> real dispatch order.
// It reports false when no path applies (including when there are more
// than two arguments), leaving the caller to return the original call
// unchanged.
func FoldCall(builtin string, args []*tree.Node, span loc.Span) (*tree.Node, bool) {
	if len(args) > 2 {
		return nil, false
	}

	if allInt(args) {
		if r, ok := foldInt(builtin, args, span); ok {
			return r, true
		}
	}
	if ords, ok := allBool(args); ok {
		if r, ok := foldLog(builtin, ords, span); ok {
			return r, true
		}
	}
	if allFoldedAggregate(args) {
		if r, ok := foldAgg(builtin, args, span); ok {
			return r, true
		}
	}
	if allReal(args) {
		if r, ok := foldReal(builtin, args, span); ok {
			return r, true
		}
	}
	return nil, false
}

func allInt(args []*tree.Node) bool {
	for _, a := range args {
		if !isIntLit(a) {
			return false
		}
	}
	return true
}

func allReal(args []*tree.Node) bool {
	for _, a := range args {
		if !isRealLit(a) {
			return false
		}
	}
	return true
}

func allBool(args []*tree.Node) ([]int64, bool) {
	ords := make([]int64, len(args))
	for i, a := range args {
		o, ok := asBool(a)
		if !ok {
			return nil, false
		}
		ords[i] = o
	}
	return ords, true
}

func allFoldedAggregate(args []*tree.Node) bool {
	for _, a := range args {
		if !foldedAggregate(a) {
			return false
		}
	}
	return true
}

// foldInt implements the integer path of the numeric built-ins, plus
// leq/geq which are integer-only. Overflow wraps modulo 2^64 (Go's
// native signed-integer arithmetic already does this); division truncates
// toward zero, matching Go's / operator on signed integers.
func foldInt(op string, args []*tree.Node, span loc.Span) (*tree.Node, bool) {
	if op == "neg" || op == "identity" {
		if len(args) != 1 {
			return nil, false
		}
		v := args[0].IntVal
		if op == "neg" {
			v = -v
		}
		return tree.NewIntLiteral(span, v), true
	}
	if len(args) != 2 {
		return nil, false
	}
	a, b := args[0].IntVal, args[1].IntVal
	switch op {
	case "add":
		return tree.NewIntLiteral(span, a+b), true
	case "sub":
		return tree.NewIntLiteral(span, a-b), true
	case "mul":
		return tree.NewIntLiteral(span, a*b), true
	case "div":
		if b == 0 {
			return nil, false
		}
		return tree.NewIntLiteral(span, a/b), true
	case "eq":
		return BoolRef(b2i(a == b)), true
	case "neq":
		return BoolRef(b2i(a != b)), true
	case "gt":
		return BoolRef(b2i(a > b)), true
	case "lt":
		return BoolRef(b2i(a < b)), true
	case "leq":
		return BoolRef(b2i(a <= b)), true
	case "geq":
		return BoolRef(b2i(a >= b)), true
	default:
		return nil, false
	}
}

// foldReal implements the real path of the numeric built-ins. leq/geq are
// deliberately absent: those are reserved for the integer path. Comparisons
// use host IEEE-754 equality as-is, including its NaN and signed-zero
// behaviour.
func foldReal(op string, args []*tree.Node, span loc.Span) (*tree.Node, bool) {
	if op == "neg" || op == "identity" {
		if len(args) != 1 {
			return nil, false
		}
		v := args[0].RealVal
		if op == "neg" {
			v = -v
		}
		return tree.NewRealLiteral(span, v), true
	}
	if len(args) != 2 {
		return nil, false
	}
	a, b := args[0].RealVal, args[1].RealVal
	switch op {
	case "add":
		return tree.NewRealLiteral(span, a+b), true
	case "sub":
		return tree.NewRealLiteral(span, a-b), true
	case "mul":
		return tree.NewRealLiteral(span, a*b), true
	case "div":
		return tree.NewRealLiteral(span, a/b), true
	case "eq":
		return BoolRef(b2i(a == b)), true
	case "neq":
		return BoolRef(b2i(a != b)), true
	case "gt":
		return BoolRef(b2i(a > b)), true
	case "lt":
		return BoolRef(b2i(a < b)), true
	default:
		return nil, false
	}
}

// foldLog implements the logical built-ins over boolean ordinals.
func foldLog(op string, ords []int64, span loc.Span) (*tree.Node, bool) {
	if op == "not" {
		if len(ords) != 1 {
			return nil, false
		}
		return BoolRef(b2i(ords[0] == 0)), true
	}
	if len(ords) != 2 {
		return nil, false
	}
	a, b := ords[0] != 0, ords[1] != 0
	switch op {
	case "and":
		return BoolRef(b2i(a && b)), true
	case "nand":
		return BoolRef(b2i(!(a && b))), true
	case "or":
		return BoolRef(b2i(a || b)), true
	case "nor":
		return BoolRef(b2i(!(a || b))), true
	case "xor":
		return BoolRef(b2i(a != b)), true
	case "xnor":
		return BoolRef(b2i(a == b)), true
	default:
		return nil, false
	}
}

// foldAgg implements agg_low/agg_high: the minimum, respectively maximum,
// of the explicit integer index keys appearing in a single aggregate
// argument's named and ranged associations.
func foldAgg(op string, args []*tree.Node, span loc.Span) (*tree.Node, bool) {
	if len(args) != 1 || (op != "agg_low" && op != "agg_high") {
		return nil, false
	}
	keys := aggregateKeys(args[0])
	if len(keys) == 0 {
		return nil, false
	}
	best := keys[0]
	for _, k := range keys[1:] {
		if (op == "agg_low" && k < best) || (op == "agg_high" && k > best) {
			best = k
		}
	}
	return tree.NewIntLiteral(span, best), true
}

// aggregateKeys flattens an aggregate's named keys and ranged endpoints
// into a single slice of integer index values; a positional or "others"
// association contributes nothing.
func aggregateKeys(agg *tree.Node) []int64 {
	return collections.FlatMapSlice(agg.Assocs, func(a *tree.Node) []int64 {
		switch a.AssocKind() {
		case tree.ANamed:
			return []int64{a.Key.IntVal}
		case tree.ARanged:
			return []int64{a.Left.IntVal, a.Right.IntVal}
		default:
			return nil
		}
	})
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
