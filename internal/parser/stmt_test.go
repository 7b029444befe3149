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

func parseOneStmt(t *testing.T, src string) *tree.Node {
	t.Helper()
	p := New(token.NewFileScanner("<test>", src))
	s := p.parseSequentialStmt()
	require.Equal(t, 0, p.ErrorCount())
	return s
}

func TestIfElsifDesugarsToNestedIf(t *testing.T) {
	s := parseOneStmt(t, `if a then null; elsif b then null; else null; end if;`)

	require.Equal(t, tree.KIf, s.Kind)
	require.Len(t, s.ElseStmts, 1)

	elsif := s.ElseStmts[0]
	require.Equal(t, tree.KIf, elsif.Kind)
	require.Len(t, elsif.Stmts, 1)
	require.Len(t, elsif.ElseStmts, 1)
	assert.Equal(t, tree.KNull, elsif.ElseStmts[0].Kind)
}

func TestLoopWithoutSchemeDesugarsToWhileTrue(t *testing.T) {
	s := parseOneStmt(t, `loop null; end loop;`)

	require.Equal(t, tree.KWhile, s.Kind)
	require.Equal(t, tree.KRef, s.Value.Kind)
	assert.Equal(t, "TRUE", s.Value.Ident.String())
}

func TestReportDesugarsToAssertion(t *testing.T) {
	s := parseOneStmt(t, `report "oops" severity warning;`)

	require.Equal(t, tree.KAssert, s.Kind)
	assert.True(t, s.BoolAttr("is_report"))
	assert.Equal(t, "FALSE", s.Value.Ident.String())
	assert.Equal(t, "warning", s.Right.Ident.String())
}

func TestVariableAssignment(t *testing.T) {
	s := parseOneStmt(t, `y := y + 1;`)

	require.Equal(t, tree.KVarAssign, s.Kind)
	assert.Equal(t, "y", s.Target.Ident.String())
	require.Equal(t, tree.KFCall, s.Value.Kind)
}

func TestSignalAssignmentWithWaveform(t *testing.T) {
	s := parseOneStmt(t, `q <= '1' after 5 ns;`)

	require.Equal(t, tree.KSignalAssign, s.Kind)
	assert.Equal(t, "q", s.Target.Ident.String())
	require.Len(t, s.Waveforms, 1)
	require.NotNil(t, s.Waveforms[0].After)
}

func TestWaitStmt(t *testing.T) {
	s := parseOneStmt(t, `wait on a, b until c for 10;`)

	require.Equal(t, tree.KWait, s.Kind)
	require.Len(t, s.Triggers, 2)
	require.NotNil(t, s.Value)
	require.NotNil(t, s.After)
}

func TestSequentialStmtLabel(t *testing.T) {
	s := parseOneStmt(t, `lbl: y := y + 1;`)

	require.Equal(t, tree.KVarAssign, s.Kind)
	assert.Equal(t, "lbl", s.Ident.String())
	assert.Equal(t, "y", s.Target.Ident.String())
}

func TestSequentialStmtWithoutLabelSynthesizesOne(t *testing.T) {
	s := parseOneStmt(t, `y := y + 1;`)

	require.Equal(t, tree.KVarAssign, s.Kind)
	assert.NotEqual(t, "", s.Ident.String())
}
