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
	"github.com/nickg/nvcfront/internal/ident"
	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/token"
	"github.com/nickg/nvcfront/internal/tree"
)

// hintFrame is one entry of the production-hint stack pushed by BEGIN/EXTEND
// and popped on return, mirroring the original's EXTEND/BEGIN macros.
type hintFrame struct {
	hint     string
	startLoc loc.Span
}

// Parser drives the recursive-descent grammar over a single token.Scanner. A
// Parser is not reentrant: its lookahead buffer and diagnostic counters are
// shared mutable state for the single logical flow parsing one compilation
// unit.
type Parser struct {
	la   *lookahead
	diag diagController

	hints     []hintFrame
	hint      string
	startLoc  loc.Span
	lastToken token.Token

	lineCounter int // number of labels synthesised so far, used as their N
}

// New creates a Parser reading tokens from scanner. The diagnostic
// controller starts as if recoverThresh tokens had already matched, so the
// first mismatch in the input is reported.
func New(scanner token.Scanner) *Parser {
	return &Parser{la: newLookahead(scanner), diag: diagController{nCorrect: recoverThresh}}
}

// Diagnostics returns every diagnostic actually reported so far (after
// cascade suppression).
func (p *Parser) Diagnostics() []Diagnostic { return p.diag.diagnostics }

// ErrorCount is the number of diagnostics reported so far.
func (p *Parser) ErrorCount() int { return p.diag.errorCount() }

// begin pushes a new hint, starting a fresh (invalid) start location; the
// first consume within the production will set it. Returns a function to
// call (typically deferred) to restore the caller's state.
func (p *Parser) begin(hint string) func() {
	p.hints = append(p.hints, hintFrame{hint: p.hint, startLoc: p.startLoc})
	p.hint = hint
	p.startLoc = loc.Invalid
	return p.end
}

// extend is like begin but keeps the caller's start location, for
// productions that continue a span already in progress (e.g. a statement
// production entered from parseSequentialStmt's dispatch).
func (p *Parser) extend(hint string) func() {
	p.hints = append(p.hints, hintFrame{hint: p.hint, startLoc: p.startLoc})
	p.hint = hint
	return p.end
}

func (p *Parser) end() {
	n := len(p.hints) - 1
	top := p.hints[n]
	p.hints = p.hints[:n]
	p.hint = top.hint
	p.startLoc = top.startLoc
}

// currentLoc is CURRENT_LOC: the span from the production's recorded start
// through the most recently consumed token's end.
func (p *Parser) currentLoc() loc.Span {
	return loc.Merge(p.startLoc, p.lastToken.Span)
}

func (p *Parser) noteConsumed(tok token.Token) {
	p.lastToken = tok
	if !p.startLoc.IsValid() {
		p.startLoc = tok.Span
	}
}

// peek/peek2 delegate to the lookahead buffer.
func (p *Parser) peek() token.Token  { return p.la.peek() }
func (p *Parser) peek2() token.Token { return p.la.peek2() }

// consume advances past the head token. If it is not `want`, a diagnostic
// is reported (subject to cascade suppression) but the buffer still
// advances: the mismatched token counts as implicitly skipped.
func (p *Parser) consume(want token.Kind) token.Token {
	got := p.la.advance()
	if got.Kind != want {
		p.diag.noteMismatch(got.Span, p.hint, expectedMessage(want, got))
	} else {
		p.diag.noteMatch()
	}
	p.noteConsumed(got)
	return got
}

// optional reports whether the head token is `want`, consuming it if so.
func (p *Parser) optional(want token.Kind) bool {
	if p.peek().Kind == want {
		p.consume(want)
		return true
	}
	return false
}

// scan reports whether the head token belongs to set, without consuming.
func (p *Parser) scan(set ...token.Kind) bool { return p.la.scan(set...) }

// oneOf consumes the head token iff it belongs to set; otherwise reports an
// error and leaves the buffer positioned on the unexpected token. Returns
// the token actually seen (consumed only on success).
func (p *Parser) oneOf(set ...token.Kind) token.Token {
	head := p.peek()
	for _, k := range set {
		if head.Kind == k {
			return p.consume(k)
		}
	}
	p.diag.noteMismatch(head.Span, p.hint, oneOfMessage(set, head))
	return head
}

// parseIdent consumes an identifier token and interns its text.
func (p *Parser) parseIdent() ident.ID {
	tok := p.consume(token.Ident)
	if tok.Kind != token.Ident {
		return ident.Empty
	}
	return ident.New(tok.Value.Str)
}

// synthLabel produces a unique "line_<N>" identifier for an unlabelled
// statement, where N counts the labels this Parser has synthesised (it is
// not a source line number), extended with a letter suffix if that exact
// spelling is already interned in this run (e.g. by another Parser).
func (p *Parser) synthLabel() ident.ID {
	p.lineCounter++
	base := "line_"
	return ident.Uniq(appendInt(base, p.lineCounter))
}

func appendInt(prefix string, n int) string {
	if n == 0 {
		return prefix + "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return prefix + string(digits)
}

// ParseDesignUnit implements design_unit ::= context_clause library_unit. It
// returns the next design unit, or nil at a clean EOF. nil is also
// returned when any error was reported while parsing the unit (ErrorCount
// grows in that case); callers distinguish the two by checking ErrorCount.
func (p *Parser) ParseDesignUnit() *tree.Node {
	if p.peek().Kind == token.EOF {
		return nil
	}
	defer p.begin("design unit")()

	before := p.ErrorCount()
	p.parseContextClause()
	unit := p.parseLibraryUnit()
	if p.ErrorCount() > before {
		return nil
	}
	return unit
}

// parseContextClause implements the library/use clause stubs: neither
// clause is semantically interpreted, only skipped.
func (p *Parser) parseContextClause() {
	for {
		switch {
		case p.optional(token.Library):
			p.parseIdent()
			for p.optional(token.Comma) {
				p.parseIdent()
			}
			p.consume(token.Semi)
		case p.scan(token.Use):
			p.consume(token.Use)
			p.parseSelectedName()
			p.consume(token.Semi)
		default:
			return
		}
	}
}

// parseSelectedName consumes a dotted name (library.package.all or
// library.package.object), used only by the use-clause stub.
func (p *Parser) parseSelectedName() {
	p.parseIdent()
	for p.optional(token.Dot) {
		if p.optional(token.All) {
			return
		}
		p.parseIdent()
	}
}

// parseLibraryUnit implements library_unit ::= entity_decl |
// architecture_body.
func (p *Parser) parseLibraryUnit() *tree.Node {
	switch p.peek().Kind {
	case token.Entity:
		return p.parseEntityDecl()
	case token.Architecture:
		return p.parseArchitectureBody()
	default:
		p.oneOf(token.Entity, token.Architecture)
		return nil
	}
}
