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

// defaultAssertMessage and defaultAssertSeverity implement the rule that
// an assertion missing a message or severity gets the aggregate of
// "Assertion violation." and a reference to ERROR, respectively.
func defaultAssertMessage(span loc.Span) *tree.Node {
	return stringAggregate(span, "Assertion violation.")
}

func defaultAssertSeverity(span loc.Span) *tree.Node {
	return tree.NewUnresolvedRef(span, ident.New("ERROR"))
}

// parseConcurrentStmt implements concurrent_stmt ::= [ ID ":" ]
// ( process_stmt | concurrent_assertion ), using two-token lookahead to
// decide whether a leading identifier is a label.
func (p *Parser) parseConcurrentStmt() *tree.Node {
	defer p.begin("concurrent statement")()

	var label ident.ID
	if p.peek().Kind == token.Ident && p.peek2().Kind == token.Colon {
		label = p.parseIdent()
		p.consume(token.Colon)
	}

	var n *tree.Node
	if p.scan(token.Postponed, token.Process) {
		n = p.parseProcessStmt()
	} else {
		n = p.parseConcurrentAssertion()
	}

	if label.Valid() {
		n.Ident = label
	} else if n.Ident == ident.Empty {
		n.Ident = p.synthLabel()
	}
	return n
}

// parseProcessStmt implements:
//
//	process_stmt ::= [ "postponed" ] "process" [ "(" sens_list ")" ] [ "is" ]
//	                 { variable_decl } "begin" { sequential_stmt }
//	                 "end" [ "postponed" ] "process" [ ID ] ";"
func (p *Parser) parseProcessStmt() *tree.Node {
	defer p.begin("process statement")()

	postponed := p.optional(token.Postponed)
	p.consume(token.Process)

	n := tree.New(tree.KProcess)
	if postponed {
		n.SetAttr("postponed", true)
	}

	if p.optional(token.LParen) {
		n.Triggers = append(n.Triggers, p.parseName())
		for p.optional(token.Comma) {
			n.Triggers = append(n.Triggers, p.parseName())
		}
		p.consume(token.RParen)
	}
	p.optional(token.Is)

	for p.scan(token.Variable) {
		n.Decls = append(n.Decls, p.parseVariableDecl()...)
	}

	p.consume(token.Begin)
	for !p.scan(token.End, token.EOF) {
		n.Stmts = append(n.Stmts, p.parseSequentialStmt())
	}
	p.consume(token.End)
	p.optional(token.Postponed)
	p.consume(token.Process)
	if p.scan(token.Ident) {
		p.parseIdent()
	}
	p.consume(token.Semi)

	n.Span = p.currentLoc()
	return n
}

// parseConcurrentAssertion implements the concurrent form of an assertion
// statement: assertion ";". A leading "postponed" is not accepted here;
// parseConcurrentStmt routes it to parseProcessStmt.
func (p *Parser) parseConcurrentAssertion() *tree.Node {
	defer p.begin("concurrent assertion statement")()

	n := p.parseAssertCore()
	p.consume(token.Semi)
	n.SetAttr("concurrent", true)
	n.Span = p.currentLoc()
	return n
}

// parseSequentialStmt implements sequential_stmt ::= [ ID ":" ]
// ( wait_stmt | assertion_stmt | report_stmt | if_stmt | null_stmt |
// return_stmt | loop_stmt | assignment_stmt ), using the same two-token
// lookahead as parseConcurrentStmt to decide whether a leading identifier is
// a label: if it is not followed by ":", it is a name starting an
// assignment statement instead.
func (p *Parser) parseSequentialStmt() *tree.Node {
	defer p.begin("sequential statement")()

	var label ident.ID
	if p.peek().Kind == token.Ident && p.peek2().Kind == token.Colon {
		label = p.parseIdent()
		p.consume(token.Colon)
	}

	var n *tree.Node
	switch p.peek().Kind {
	case token.Wait:
		n = p.parseWaitStmt()
	case token.Assert:
		n = p.parseAssertionStmt()
	case token.Report:
		n = p.parseReportStmt()
	case token.If:
		n = p.parseIfStmt()
	case token.Null:
		n = p.parseNullStmt()
	case token.Return:
		n = p.parseReturnStmt()
	case token.While, token.Loop:
		n = p.parseLoopStmt()
	default:
		n = p.parseAssignmentStmt()
	}

	if label.Valid() {
		n.Ident = label
	} else if n.Ident == ident.Empty {
		n.Ident = p.synthLabel()
	}
	return n
}

// parseAssertionStmt implements the sequential form: assertion ";", keeping
// the start location of the enclosing "sequential statement" production
// (EXTEND, not BEGIN: the dispatching parseSequentialStmt already opened
// the production).
func (p *Parser) parseAssertionStmt() *tree.Node {
	defer p.extend("assertion statement")()

	n := p.parseAssertCore()
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseAssertCore parses assertion ::= "assert" condition [ "report"
// expression ] [ "severity" expression ], the part shared by the sequential
// and concurrent assertion statements, filling in the default message and
// severity when either is omitted. It is its own production (own hint and
// span), matching the original grammar's separate p_assertion; the caller
// consumes the trailing semicolon.
func (p *Parser) parseAssertCore() *tree.Node {
	defer p.begin("assertion")()

	p.consume(token.Assert)
	n := tree.New(tree.KAssert)
	n.Value = p.parseExpr()

	if p.optional(token.Report) {
		n.Left = p.parseExpr()
	} else {
		n.Left = defaultAssertMessage(p.currentLoc())
	}
	if p.optional(token.Severity) {
		n.Right = p.parseExpr()
	} else {
		n.Right = defaultAssertSeverity(p.currentLoc())
	}
	n.Span = p.currentLoc()
	return n
}

// parseReportStmt desugars "report" msg ["severity" sev] ";" into an
// assertion whose condition is a reference to FALSE and whose default
// severity is NOTE, tagged is_report so downstream passes can still tell
// the two apart.
func (p *Parser) parseReportStmt() *tree.Node {
	defer p.extend("report statement")()

	p.consume(token.Report)
	n := tree.New(tree.KAssert)
	n.Value = tree.NewUnresolvedRef(p.currentLoc(), ident.New("FALSE"))
	n.Left = p.parseExpr()
	if p.optional(token.Severity) {
		n.Right = p.parseExpr()
	} else {
		n.Right = tree.NewUnresolvedRef(p.currentLoc(), ident.New("NOTE"))
	}
	p.consume(token.Semi)
	n.SetAttr("is_report", true)
	n.Span = p.currentLoc()
	return n
}

// parseWaitStmt implements wait_stmt ::= "wait" [ "on" sens_list ]
// [ "until" condition ] [ "for" timeout ] ";".
func (p *Parser) parseWaitStmt() *tree.Node {
	defer p.extend("wait statement")()

	p.consume(token.Wait)
	n := tree.New(tree.KWait)

	if p.optional(token.On) {
		n.Triggers = append(n.Triggers, p.parseName())
		for p.optional(token.Comma) {
			n.Triggers = append(n.Triggers, p.parseName())
		}
	}
	if p.optional(token.Until) {
		n.Value = p.parseExpr()
	}
	if p.optional(token.For) {
		n.After = p.parseExpr()
	}
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseIfStmt implements if_stmt, desugaring each "elsif" into a nested
// KIf appended as the sole element of the enclosing if's ElseStmts.
func (p *Parser) parseIfStmt() *tree.Node {
	defer p.extend("if statement")()

	p.consume(token.If)
	n := tree.New(tree.KIf)
	n.Value = p.parseExpr()
	p.consume(token.Then)
	for !p.scan(token.Elsif, token.Else, token.End) {
		n.Stmts = append(n.Stmts, p.parseSequentialStmt())
	}

	cur := n
	for p.optional(token.Elsif) {
		elsif := tree.New(tree.KIf)
		elsif.Value = p.parseExpr()
		p.consume(token.Then)
		for !p.scan(token.Elsif, token.Else, token.End) {
			elsif.Stmts = append(elsif.Stmts, p.parseSequentialStmt())
		}
		elsif.Span = p.currentLoc()
		cur.ElseStmts = []*tree.Node{elsif}
		cur = elsif
	}
	if p.optional(token.Else) {
		for !p.scan(token.End) {
			cur.ElseStmts = append(cur.ElseStmts, p.parseSequentialStmt())
		}
	}

	p.consume(token.End)
	p.consume(token.If)
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseNullStmt implements null_stmt ::= "null" ";".
func (p *Parser) parseNullStmt() *tree.Node {
	defer p.extend("null statement")()

	p.consume(token.Null)
	p.consume(token.Semi)
	n := tree.New(tree.KNull)
	n.Span = p.currentLoc()
	return n
}

// parseReturnStmt implements return_stmt ::= "return" [ expression ] ";".
func (p *Parser) parseReturnStmt() *tree.Node {
	defer p.extend("return statement")()

	p.consume(token.Return)
	n := tree.New(tree.KReturn)
	if !p.scan(token.Semi) {
		n.Value = p.parseExpr()
	}
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseLoopStmt implements loop_stmt, covering both "while" condition
// "loop" ... "end loop" and the iteration_scheme-less form, which
// desugars to "while true".
func (p *Parser) parseLoopStmt() *tree.Node {
	defer p.begin("loop statement")()

	n := tree.New(tree.KWhile)
	if p.optional(token.While) {
		n.Value = p.parseExpr()
	} else {
		n.Value = tree.NewUnresolvedRef(p.currentLoc(), ident.New("TRUE"))
	}
	p.consume(token.Loop)
	for !p.scan(token.End, token.EOF) {
		n.Stmts = append(n.Stmts, p.parseSequentialStmt())
	}
	p.consume(token.End)
	p.consume(token.Loop)
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseAssignmentStmt implements the name-first disambiguation: parse the
// target name, then dispatch on the assignment operator. ":=" is a
// variable assignment; "<=" is a signal assignment whose right-hand side is
// one or more waveform elements. The hint is only set once the operator is
// known, matching the original grammar's separate
// p_variable_assignment_statement/p_signal_assignment_statement productions.
func (p *Parser) parseAssignmentStmt() *tree.Node {
	target := p.parseName()

	if p.optional(token.Assign) {
		defer p.extend("variable assignment statement")()
		n := tree.New(tree.KVarAssign)
		n.Target = target
		n.Value = p.parseExpr()
		p.consume(token.Semi)
		n.Span = p.currentLoc()
		return n
	}

	defer p.extend("signal assignment statement")()
	p.consume(token.Leq)
	n := tree.New(tree.KSignalAssign)
	n.Target = target
	n.Waveforms = append(n.Waveforms, p.parseWaveform())
	for p.optional(token.Comma) {
		n.Waveforms = append(n.Waveforms, p.parseWaveform())
	}
	p.consume(token.Semi)
	n.Span = p.currentLoc()
	return n
}

// parseWaveform implements waveform_element ::= expression [ "after"
// expression ] | "null" [ "after" expression ].
func (p *Parser) parseWaveform() *tree.Node {
	w := tree.New(tree.KWaveform)
	if p.optional(token.Null) {
		w.Value = tree.New(tree.KNull)
	} else {
		w.Value = p.parseExpr()
	}
	if p.optional(token.After) {
		w.After = p.parseExpr()
	}
	w.Span = p.currentLoc()
	return w
}
