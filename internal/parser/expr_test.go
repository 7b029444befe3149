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
	"testing"

	"github.com/nickg/nvcfront/internal/token"
	"github.com/nickg/nvcfront/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Parser {
	t.Helper()
	return New(token.NewFileScanner("<test>", src))
}

func TestParseExprPrecedence(t *testing.T) {
	p := parse(t, "1 + 2 * 3")
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KFCall, e.Kind)
	assert.Equal(t, `"+"`, e.Ident.String())
	require.Len(t, e.Params, 2)

	left := e.Params[0].Value
	require.Equal(t, tree.KLiteral, left.Kind)
	assert.Equal(t, int64(1), left.IntVal)

	right := e.Params[1].Value
	require.Equal(t, tree.KFCall, right.Kind)
	assert.Equal(t, `"*"`, right.Ident.String())
	assert.Equal(t, int64(2), right.Params[0].Value.IntVal)
	assert.Equal(t, int64(3), right.Params[1].Value.IntVal)
}

func TestParseExprRelationAndLogical(t *testing.T) {
	p := parse(t, "a < b and c")
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KFCall, e.Kind)
	assert.Equal(t, `"and"`, e.Ident.String())

	lt := e.Params[0].Value
	assert.Equal(t, `"<"`, lt.Ident.String())
}

func TestParseExprUnaryNot(t *testing.T) {
	p := parse(t, "not true")
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KFCall, e.Kind)
	assert.Equal(t, `"not"`, e.Ident.String())
	require.Len(t, e.Params, 1)
	assert.Equal(t, tree.KRef, e.Params[0].Value.Kind)
}

func TestParsePhysicalLiteral(t *testing.T) {
	p := parse(t, "10 ns")
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KFCall, e.Kind)
	assert.Equal(t, `"*"`, e.Ident.String())
	assert.Equal(t, int64(10), e.Params[0].Value.IntVal)
	assert.Equal(t, tree.KRef, e.Params[1].Value.Kind)
	assert.Equal(t, "ns", e.Params[1].Value.Ident.String())
}

func TestParseStringLiteralDesugarsToAggregate(t *testing.T) {
	p := parse(t, `"ab"`)
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KAggregate, e.Kind)
	require.Len(t, e.Assocs, 2)
	assert.Equal(t, "'a'", e.Assocs[0].Value.Ident.String())
	assert.Equal(t, "'b'", e.Assocs[1].Value.Ident.String())
}

func TestParseFunctionCallVsSliceName(t *testing.T) {
	call := parse(t, "f(1, 2)")
	callExpr := call.ParseExpr()
	require.Equal(t, 0, call.ErrorCount())
	require.Equal(t, tree.KFCall, callExpr.Kind)
	assert.Equal(t, "f", callExpr.Ident.String())
	require.Len(t, callExpr.Params, 2)

	slice := parse(t, "v(1 to 3)")
	sliceExpr := slice.ParseExpr()
	require.Equal(t, 0, slice.ErrorCount())
	require.Equal(t, tree.KArraySlice, sliceExpr.Kind)
	assert.Equal(t, tree.DirTo, sliceExpr.Dir)
}

func TestParseAggregate(t *testing.T) {
	p := parse(t, "(1 => 'a', 5 to 7 => 'b', others => 'c')")
	e := p.ParseExpr()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KAggregate, e.Kind)
	require.Len(t, e.Assocs, 3)
	assert.Equal(t, tree.ANamed, e.Assocs[0].AssocKind())
	assert.Equal(t, tree.ARanged, e.Assocs[1].AssocKind())
	assert.Equal(t, tree.AOthers, e.Assocs[2].AssocKind())
}
