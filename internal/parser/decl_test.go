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

	"github.com/nickg/nvcfront/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityDeclWithPorts(t *testing.T) {
	p := parse(t, "entity e is port (a,b: in bit); end;")
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())
	require.NotNil(t, unit)

	require.Equal(t, tree.KEntityDecl, unit.Kind)
	assert.Equal(t, "e", unit.Ident.String())
	require.Len(t, unit.Ports, 2)

	for _, port := range unit.Ports {
		assert.Equal(t, tree.ModeIn, port.PortMode())
		assert.Equal(t, "bit", port.Type.Ident.String())
		assert.Equal(t, unit.Ports[0].Span, port.Span)
	}
	assert.Equal(t, "a", unit.Ports[0].Ident.String())
	assert.Equal(t, "b", unit.Ports[1].Ident.String())
}

func TestParseEntityDeclWithGenericAndPort(t *testing.T) {
	p := parse(t, `entity counter is
		generic (width: integer := 8);
		port (clk: in bit; q: out bit);
	end entity counter;`)
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())

	require.Len(t, unit.Generics, 1)
	assert.Equal(t, "width", unit.Generics[0].Ident.String())
	require.NotNil(t, unit.Generics[0].Value)

	require.Len(t, unit.Ports, 2)
	assert.Equal(t, tree.ModeIn, unit.Ports[0].PortMode())
	assert.Equal(t, tree.ModeOut, unit.Ports[1].PortMode())
}

func TestParseArchitectureBodyWithProcess(t *testing.T) {
	p := parse(t, `architecture a of e is begin
		p: process begin
			assert x;
		end process;
	end architecture a;`)
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())

	require.Equal(t, tree.KArchitecture, unit.Kind)
	assert.Equal(t, "a", unit.Ident.String())
	assert.Equal(t, "e", unit.Ident2.String())
	require.Len(t, unit.Stmts, 1)

	proc := unit.Stmts[0]
	assert.Equal(t, tree.KProcess, proc.Kind)
	assert.Equal(t, "p", proc.Ident.String())
	require.Len(t, proc.Stmts, 1)

	assertStmt := proc.Stmts[0]
	require.Equal(t, tree.KAssert, assertStmt.Kind)
	require.NotNil(t, assertStmt.Left)
	require.Equal(t, tree.KAggregate, assertStmt.Left.Kind)
	require.Len(t, assertStmt.Left.Assocs, len("Assertion violation."))
	assert.Equal(t, "ERROR", assertStmt.Right.Ident.String())
}

func TestParseArchitectureSynthesisesStatementLabel(t *testing.T) {
	p := parse(t, `architecture a of e is begin
		process begin
			null;
		end process;
	end architecture;`)
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())

	require.Len(t, unit.Stmts, 1)
	assert.Regexp(t, `^line_\d+`, unit.Stmts[0].Ident.String())
}

func TestParseSignalDecls(t *testing.T) {
	p := parse(t, `architecture a of e is
		signal s1, s2: bit;
	begin
	end architecture;`)
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())

	require.Len(t, unit.Decls, 2)
	assert.Equal(t, tree.KSignalDecl, unit.Decls[0].Kind)
	assert.Equal(t, "s1", unit.Decls[0].Ident.String())
	assert.Equal(t, "s2", unit.Decls[1].Ident.String())
}
