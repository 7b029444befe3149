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
	"testing"

	"github.com/andreyvit/diff"
	"github.com/google/go-cmp/cmp"
	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/parser"
	"github.com/nickg/nvcfront/internal/token"
	"github.com/nickg/nvcfront/internal/tree"
)

// litSummary is a comparison-friendly projection of the fields a folded
// literal actually carries, used so cmp.Diff does not need to know how to
// traverse tree.Node's unexported attribute map.
type litSummary struct {
	Kind   tree.Kind
	IntVal int64
}

func summarize(n *tree.Node) litSummary {
	return litSummary{Kind: n.Kind, IntVal: n.IntVal}
}

// TestFoldConstantsScenario reproduces the worked example that
// internal/eval's TestEvalFoldsArithmetic also checks: "1 + 2 * 3" folds,
// after operator resolution, to the literal 7.
func TestFoldConstantsScenario(t *testing.T) {
	p := parser.New(token.NewFileScanner("<test>", "1 + 2 * 3"))
	e := p.ParseExpr()
	if p.ErrorCount() != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Diagnostics())
	}

	resolveOperators(e)
	foldConstants(e)

	if diff := cmp.Diff(litSummary{Kind: tree.KLiteral, IntVal: 7}, summarize(e)); diff != "" {
		t.Errorf("folded result does not match expected (-want +got):\n%s", diff)
	}
}

// TestSortDiagnosticsOrdering checks that sortDiagnostics produces a
// single top-to-bottom report regardless of the order diagnostics were
// appended in, comparing the rendered report line by line so a mismatch
// names exactly which line moved.
func TestSortDiagnosticsOrdering(t *testing.T) {
	mk := func(file string, line int, msg string) parser.Diagnostic {
		return parser.Diagnostic{
			Span: loc.Span{File: file, FirstLine: line, FirstCol: 1, LastLine: line, LastCol: 1},
			Hint: "test", Message: msg,
		}
	}

	unordered := []parser.Diagnostic{
		mk("b.vhd", 3, "third"),
		mk("a.vhd", 10, "second file, later line"),
		mk("a.vhd", 2, "first"),
	}

	got := renderDiagnostics(sortDiagnostics(unordered))
	want := strings.Join([]string{
		"a.vhd:2:1-1: first (while parsing test)",
		"a.vhd:10:1-1: second file, later line (while parsing test)",
		"b.vhd:3:1-1: third (while parsing test)",
	}, "\n") + "\n"

	if got != want {
		t.Errorf("diagnostic report out of order:\n%s", diff.LineDiff(want, got))
	}
}

func renderDiagnostics(diags []parser.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
