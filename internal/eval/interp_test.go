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
	"testing"

	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builtinCall builds an unevaluated fcall to the named built-in operator,
// bypassing the parser entirely (per the design decision that operator
// resolution - binding a quoted operator spelling to its builtin
// declaration - happens outside this package's scope).
func builtinCall(builtin string, args ...*tree.Node) *tree.Node {
	decl := tree.NewBuiltinFunc(ident.New(builtin), builtin)
	return tree.NewFCall(loc.Invalid, decl, args...)
}

func TestEvalFoldsArithmetic(t *testing.T) {
	// 1 + 2 * 3 -> "+"(1, "*"(2, 3)), both builtins marked, folds to 7.
	mul := builtinCall("mul", tree.NewIntLiteral(loc.Invalid, 2), tree.NewIntLiteral(loc.Invalid, 3))
	add := builtinCall("add", tree.NewIntLiteral(loc.Invalid, 1), mul)

	result, err := Eval(add)
	require.NoError(t, err)
	require.Equal(t, tree.KLiteral, result.Kind)
	assert.Equal(t, int64(7), result.IntVal)
}

func TestEvalIsIdempotent(t *testing.T) {
	call := builtinCall("add", tree.NewIntLiteral(loc.Invalid, 1), tree.NewIntLiteral(loc.Invalid, 2))
	once, err := Eval(call)
	require.NoError(t, err)
	twice, err := Eval(once)
	require.NoError(t, err)
	assert.Equal(t, once.IntVal, twice.IntVal)
}

func TestEvalLogicalNot(t *testing.T) {
	// not true folds to the ordinal-0 (false) literal of the same type.
	call := builtinCall("not", BoolRef(1))

	result, err := Eval(call)
	require.NoError(t, err)
	ord, ok := asBool(result)
	require.True(t, ok)
	assert.Equal(t, int64(0), ord)
}

func TestEvalUserFunctionWithLoop(t *testing.T) {
	// function f(x: integer) return integer is
	//   variable y: integer := x;
	// begin
	//   while y < 10 loop y := y + 1; end loop;
	//   return y;
	// end;
	x := ident.New("x")
	y := ident.New("y")

	yDecl := tree.NewVarDecl(y, nil, tree.NewUnresolvedRef(loc.Invalid, x))

	whileStmt := tree.New(tree.KWhile)
	whileStmt.Value = builtinCall("lt", tree.NewUnresolvedRef(loc.Invalid, y), tree.NewIntLiteral(loc.Invalid, 10))
	assign := tree.New(tree.KVarAssign)
	assign.Target = tree.NewUnresolvedRef(loc.Invalid, y)
	assign.Value = builtinCall("add", tree.NewUnresolvedRef(loc.Invalid, y), tree.NewIntLiteral(loc.Invalid, 1))
	whileStmt.Stmts = []*tree.Node{assign}

	ret := tree.New(tree.KReturn)
	ret.Value = tree.NewUnresolvedRef(loc.Invalid, y)

	body := tree.NewFuncBody(ident.New("f"), []*tree.Node{tree.NewFuncParam(x, nil)}, []*tree.Node{yDecl}, []*tree.Node{whileStmt, ret})

	call := tree.NewFCall(loc.Invalid, body, tree.NewIntLiteral(loc.Invalid, 3))
	result, err := Eval(call)
	require.NoError(t, err)
	require.Equal(t, tree.KLiteral, result.Kind)
	assert.Equal(t, int64(10), result.IntVal)
}

func TestEvalAggregateLowHigh(t *testing.T) {
	agg := tree.NewAggregate(loc.Invalid,
		tree.NewAssocNamed(tree.NewIntLiteral(loc.Invalid, 1), tree.NewUnresolvedRef(loc.Invalid, ident.New("'a'"))),
		tree.NewAssocRanged(tree.NewIntLiteral(loc.Invalid, 5), tree.NewIntLiteral(loc.Invalid, 7), tree.DirTo, tree.NewUnresolvedRef(loc.Invalid, ident.New("'b'"))),
		tree.NewAssocNamed(tree.NewIntLiteral(loc.Invalid, 3), tree.NewUnresolvedRef(loc.Invalid, ident.New("'c'"))),
	)

	low, err := Eval(builtinCall("agg_low", agg))
	require.NoError(t, err)
	assert.Equal(t, int64(1), low.IntVal)

	high, err := Eval(builtinCall("agg_high", agg))
	require.NoError(t, err)
	assert.Equal(t, int64(7), high.IntVal)
}

func TestEvalUnboundReferenceIsFatal(t *testing.T) {
	// Invoking eval on a call with a free (unbound) variable reference as
	// an argument is a caller bug: the precondition is that every argument
	// is already known to be constant.
	call := builtinCall("identity", tree.NewUnresolvedRef(loc.Invalid, ident.New("nonexistent")))
	_, err := Eval(call)
	require.Error(t, err)
	var fatal *EvalFatal
	assert.ErrorAs(t, err, &fatal)
}

func TestEvalMoreThanTwoArgsNotFolded(t *testing.T) {
	call := builtinCall("add",
		tree.NewIntLiteral(loc.Invalid, 1),
		tree.NewIntLiteral(loc.Invalid, 2),
		tree.NewIntLiteral(loc.Invalid, 3),
	)
	result, err := Eval(call)
	require.NoError(t, err)
	assert.Equal(t, tree.KFCall, result.Kind)
}
