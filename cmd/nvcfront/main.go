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

// Command nvcfront drives the parser and constant-folding evaluator over a
// source file, design unit by design unit, printing the resulting trees
// when -dump is given (with every foldable call already reduced to a
// constant) and a final, location-sorted diagnostic report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nickg/nvcfront/internal/collections"
	"github.com/nickg/nvcfront/internal/eval"
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/parser"
	"github.com/nickg/nvcfront/internal/token"
	"github.com/nickg/nvcfront/internal/tree"
)

func main() {
	dumpTree := flag.Bool("dump", false, "print the parsed tree for every design unit")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		log.Fatal("program requires at least 1 argument: a source file path or glob pattern")
	}

	paths, err := expandArgs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	var allDiags []parser.Diagnostic
	var totalUnits int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		units, diags := run(path, string(data), *dumpTree)
		totalUnits += units
		allDiags = append(allDiags, diags...)
	}

	for _, d := range sortDiagnostics(allDiags) {
		fmt.Fprintln(os.Stderr, d)
	}
	if len(allDiags) > 0 {
		bad := collections.ToSet(collections.MapSlice(allDiags, func(d parser.Diagnostic) string {
			return d.Span.File
		}))
		fmt.Fprintf(os.Stderr, "diagnostics in %d of %d file(s)\n", len(bad), len(paths))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d design unit(s) parsed cleanly across %d file(s)\n", totalUnits, len(paths))
}

// expandArgs resolves each command-line argument as a doublestar glob
// pattern (e.g. "rtl/**/*.vhd"), falling back to the argument itself when
// it matches no file, so plain file paths keep working exactly as before.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// run parses every design unit in src in turn, binds its unresolved
// operator calls to the built-in folder, constant-folds every call it
// finds, and returns the count of cleanly-parsed units plus every
// diagnostic accumulated across the whole file. A single Parser is reused
// across units, matching the spec's single-parse-per-scanner model while
// still surfacing every design unit the file contains.
func run(path, src string, dumpTree bool) (int, []parser.Diagnostic) {
	p := parser.New(token.NewFileScanner(path, src))

	var units int
	for {
		reportedBefore := p.ErrorCount()
		unit := p.ParseDesignUnit()
		if unit == nil {
			if p.ErrorCount() == reportedBefore {
				break // clean EOF
			}
			continue // fatal parse error on this unit; keep trying the rest of the file
		}
		resolveOperators(unit)
		foldConstants(unit)
		if dumpTree {
			dump(os.Stdout, unit, 0)
		}
		units++
	}
	return units, p.Diagnostics()
}

// foldConstants walks t looking for function-call nodes and replaces each
// one that folds with its constant result, in place - precisely the
// contract eval.Eval documents for a single call. It visits children
// before their parent, so nested calls are already folded when their
// parents are visited.
func foldConstants(n *tree.Node) {
	if n == nil {
		return
	}
	for _, c := range childNodes(n) {
		foldConstants(c)
	}
	if n.Kind != tree.KFCall {
		return
	}
	if folded, err := eval.Eval(n); err == nil && folded != n {
		*n = *folded
	}
}

// childNodes enumerates every direct child slot of n that foldConstants
// should recurse into, mirroring resolveOperators' traversal.
func childNodes(n *tree.Node) []*tree.Node {
	var kids []*tree.Node
	add := func(c *tree.Node) {
		if c != nil {
			kids = append(kids, c)
		}
	}
	add(n.Value)
	add(n.Target)
	add(n.Left)
	add(n.Right)
	add(n.Key)
	add(n.After)
	for _, groups := range [][]*tree.Node{
		n.Stmts, n.ElseStmts, n.Decls, n.Params, n.Assocs,
		n.Waveforms, n.Triggers, n.Ports, n.Generics,
	} {
		for _, c := range groups {
			add(c)
		}
	}
	return kids
}

// sortDiagnostics orders diagnostics by source position so a file with
// several design units (and therefore several independent runs of the
// cascade-suppression heuristic) still reports in a single, readable
// top-to-bottom pass rather than interleaved by whichever unit happened to
// detect the mismatch first.
func sortDiagnostics(diags []parser.Diagnostic) []parser.Diagnostic {
	pq := collections.NewPriorityQueue(collections.MapSlice(diags, func(d parser.Diagnostic) sortableDiag {
		return sortableDiag{d}
	}))
	out := make([]parser.Diagnostic, 0, len(diags))
	for !pq.Empty() {
		out = append(out, pq.Pop().d)
	}
	return out
}

type sortableDiag struct{ d parser.Diagnostic }

func (s sortableDiag) Less(other sortableDiag) bool {
	a, b := s.d.Span, other.d.Span
	if a.File != b.File {
		return a.File < b.File
	}
	if a.FirstLine != b.FirstLine {
		return a.FirstLine < b.FirstLine
	}
	return a.FirstCol < b.FirstCol
}

// dump prints a tree in a simple indented form for the -dump flag. It is a
// debugging aid, not a serialisation format: nothing downstream parses it
// back.
func dump(w *os.File, n *tree.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%*s%s", depth*2, "", n.Kind)
	if n.Ident != ident.Empty {
		fmt.Fprintf(w, " %s", n.Ident)
	}
	if n.Kind == tree.KLiteral {
		switch n.LiteralKind() {
		case tree.LInt:
			fmt.Fprintf(w, " = %d", n.IntVal)
		case tree.LReal:
			fmt.Fprintf(w, " = %g", n.RealVal)
		}
	}
	fmt.Fprintf(w, "  [%s]\n", n.Span)
	for _, c := range childNodes(n) {
		dump(w, c, depth+1)
	}
}
