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

	"github.com/nickg/nvcfront/internal/loc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDesignUnitCleanEOF(t *testing.T) {
	p := parse(t, "")
	unit := p.ParseDesignUnit()
	assert.Nil(t, unit)
	assert.Equal(t, 0, p.ErrorCount())
}

func TestDiagnosticCascadeSuppression(t *testing.T) {
	// Directly drives the diagnostic controller to check the cascade
	// suppression policy: an error is only reported once nCorrect has
	// reached recoverThresh since the last one, and every mismatch resets
	// the counter.
	var d diagController

	for i := 0; i < recoverThresh; i++ {
		d.noteMatch()
	}
	d.noteMismatch(loc.Invalid, "test", "first error")
	assert.Equal(t, 1, d.errorCount())

	// Immediately mismatching again, with no intervening correct run,
	// must not add a second diagnostic.
	d.noteMismatch(loc.Invalid, "test", "second error")
	assert.Equal(t, 1, d.errorCount())

	for i := 0; i < recoverThresh-1; i++ {
		d.noteMatch()
	}
	d.noteMismatch(loc.Invalid, "test", "too early")
	assert.Equal(t, 1, d.errorCount(), "must not report before recoverThresh correct consumes")

	for i := 0; i < recoverThresh; i++ {
		d.noteMatch()
	}
	d.noteMismatch(loc.Invalid, "test", "third error")
	assert.Equal(t, 2, d.errorCount())
}

func TestUseClauseStubIsSkipped(t *testing.T) {
	p := parse(t, "library ieee; use ieee.std_logic_1164.all; entity e is end;")
	unit := p.ParseDesignUnit()
	require.Equal(t, 0, p.ErrorCount())
	require.NotNil(t, unit)
	assert.Equal(t, "e", unit.Ident.String())
}
