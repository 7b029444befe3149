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

// quoted renders an operator spelling the way VHDL declares operator
// functions: surrounded by literal double quotes, e.g. quoted("+") == `"+"`.
func quoted(op string) string { return `"` + op + `"` }

// mkBinary builds an unresolved function-call node for a binary operator.
// The referent is left nil: per the Non-goals, name resolution beyond what
// the parser inherently records is out of scope, so operator calls stay
// unresolved until a later semantic pass binds them to a builtin
// declaration.
func mkBinary(op string, left, right *tree.Node, span loc.Span) *tree.Node {
	n := tree.New(tree.KFCall)
	n.Span = span
	n.Ident = ident.New(quoted(op))
	n.Params = []*tree.Node{tree.NewAssocPositional(left), tree.NewAssocPositional(right)}
	return n
}

// mkUnary builds an unresolved function-call node for a unary operator.
func mkUnary(op string, operand *tree.Node, span loc.Span) *tree.Node {
	n := tree.New(tree.KFCall)
	n.Span = span
	n.Ident = ident.New(quoted(op))
	n.Params = []*tree.Node{tree.NewAssocPositional(operand)}
	return n
}

// ParseExpr implements expression, the lowest (and entry) precedence level.
func (p *Parser) ParseExpr() *tree.Node { return p.parseExpression() }

// parseExpr is the name the grammar's productions use for ParseExpr.
func (p *Parser) parseExpr() *tree.Node { return p.parseExpression() }

// parseExpression ::= relation { ("and"|"or"|"xor"|"nand"|"nor"|"xnor") relation }
func (p *Parser) parseExpression() *tree.Node {
	defer p.begin("expression")()

	expr := p.parseRelation()
	for p.scan(token.And, token.Or, token.Xor, token.Nand, token.Nor, token.Xnor) {
		op := p.logicalOperator()
		right := p.parseRelation()
		expr = mkBinary(op, expr, right, p.currentLoc())
	}
	return expr
}

func (p *Parser) logicalOperator() string {
	switch p.oneOf(token.And, token.Or, token.Xor, token.Nand, token.Nor, token.Xnor).Kind {
	case token.And:
		return "and"
	case token.Or:
		return "or"
	case token.Xor:
		return "xor"
	case token.Nand:
		return "nand"
	case token.Nor:
		return "nor"
	case token.Xnor:
		return "xnor"
	default:
		return "error"
	}
}

// parseRelation ::= shift_expression { relational_operator shift_expression }
func (p *Parser) parseRelation() *tree.Node {
	defer p.begin("relation")()

	rel := p.parseShiftExpr()
	for p.scan(token.Eq, token.Neq, token.Lt, token.Leq, token.Gt, token.Geq) {
		op := p.relationalOperator()
		right := p.parseShiftExpr()
		rel = mkBinary(op, rel, right, p.currentLoc())
	}
	return rel
}

func (p *Parser) relationalOperator() string {
	switch p.oneOf(token.Eq, token.Neq, token.Lt, token.Leq, token.Gt, token.Geq).Kind {
	case token.Eq:
		return "="
	case token.Neq:
		return "/="
	case token.Lt:
		return "<"
	case token.Leq:
		return "<="
	case token.Gt:
		return ">"
	case token.Geq:
		return ">="
	default:
		return "error"
	}
}

// parseShiftExpr ::= simple_expression [ shift_operator simple_expression ]
func (p *Parser) parseShiftExpr() *tree.Node {
	defer p.begin("shift expression")()

	left := p.parseSimpleExpr()
	if p.scan(token.Sll, token.Srl) {
		op := "sll"
		if p.peek().Kind == token.Srl {
			op = "srl"
		}
		p.consume(p.peek().Kind)
		right := p.parseSimpleExpr()
		return mkBinary(op, left, right, p.currentLoc())
	}
	return left
}

// parseSimpleExpr ::= [ sign ] term { adding_operator term }
func (p *Parser) parseSimpleExpr() *tree.Node {
	defer p.begin("simple expression")()

	var expr *tree.Node
	if p.scan(token.Plus, token.Minus) {
		op := "+"
		if p.peek().Kind == token.Minus {
			op = "-"
		}
		p.consume(p.peek().Kind)
		operand := p.parseTerm()
		if op == "-" {
			expr = mkUnary("-", operand, p.currentLoc())
		} else {
			expr = mkUnary("+", operand, p.currentLoc())
		}
	} else {
		expr = p.parseTerm()
	}

	for p.scan(token.Plus, token.Minus, token.Amp) {
		op := p.addingOperator()
		right := p.parseTerm()
		expr = mkBinary(op, expr, right, p.currentLoc())
	}
	return expr
}

func (p *Parser) addingOperator() string {
	switch p.oneOf(token.Plus, token.Minus, token.Amp).Kind {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Amp:
		return "&"
	default:
		return "error"
	}
}

// parseTerm ::= factor { multiplying_operator factor }
func (p *Parser) parseTerm() *tree.Node {
	defer p.begin("term")()

	term := p.parseFactor()
	for p.scan(token.Times, token.Over, token.Mod, token.Rem) {
		op := p.multiplyingOperator()
		right := p.parseFactor()
		term = mkBinary(op, term, right, p.currentLoc())
	}
	return term
}

func (p *Parser) multiplyingOperator() string {
	switch p.oneOf(token.Times, token.Over, token.Mod, token.Rem).Kind {
	case token.Times:
		return "*"
	case token.Over:
		return "/"
	case token.Mod:
		return "mod"
	case token.Rem:
		return "rem"
	default:
		return "error"
	}
}

// parseFactor ::= primary [ "**" primary ] | "abs" primary | "not" primary
func (p *Parser) parseFactor() *tree.Node {
	defer p.begin("factor")()

	switch p.peek().Kind {
	case token.Abs:
		p.consume(token.Abs)
		operand := p.parsePrimary()
		return mkUnary("abs", operand, p.currentLoc())
	case token.Not:
		p.consume(token.Not)
		operand := p.parsePrimary()
		return mkUnary("not", operand, p.currentLoc())
	}

	operand := p.parsePrimary()
	if p.optional(token.Pow) {
		right := p.parsePrimary()
		return mkBinary("**", operand, right, p.currentLoc())
	}
	return operand
}

// parsePrimary implements primary: literals, aggregates, names, and
// parenthesised expressions.
func (p *Parser) parsePrimary() *tree.Node {
	defer p.begin("primary")()

	switch p.peek().Kind {
	case token.LParen:
		p.consume(token.LParen)
		// Could be a parenthesised expression or an aggregate; only the
		// latter contains "," or "=>" before the closing paren, so try the
		// aggregate path whenever the inner expression is followed by one
		// of those, falling back to a bare parenthesised expression.
		first := p.parseExpr()
		if p.scan(token.Comma) || p.scan(token.Arrow) {
			return p.parseAggregateTail(first)
		}
		p.consume(token.RParen)
		return first

	case token.Int:
		tok := p.consume(token.Int)
		lit := tree.NewIntLiteral(tok.Span, tok.Value.Int)
		if p.peek().Kind == token.Ident {
			// Physical literal: an abstract literal immediately followed by
			// a unit identifier, encoded as "*"(literal, ref(unit)).
			defer p.extend("physical literal")()
			unitTok := p.consume(token.Ident)
			unit := tree.NewUnresolvedRef(unitTok.Span, ident.New(unitTok.Value.Str))
			return mkBinary("*", lit, unit, p.currentLoc())
		}
		return lit

	case token.Real:
		tok := p.consume(token.Real)
		return tree.NewRealLiteral(tok.Span, tok.Value.Real)

	case token.String:
		tok := p.consume(token.String)
		return p.stringToAggregate(tok)

	case token.CharLit:
		tok := p.consume(token.CharLit)
		return tree.NewUnresolvedRef(tok.Span, ident.New("'"+tok.Value.Str+"'"))

	case token.Null:
		tok := p.consume(token.Null)
		return tree.NewNullLiteral(tok.Span)

	case token.Ident:
		return p.parseName()

	default:
		p.oneOf(token.LParen, token.Int, token.Real, token.Null, token.Ident, token.String, token.CharLit)
		return tree.New(tree.KOpen)
	}
}

// stringToAggregate desugars a string literal into an aggregate of
// positional references to single-character identifiers, which is how
// character strings reach the tree. Bytes equal to 0x81 are formatting
// pads and are skipped.
func (p *Parser) stringToAggregate(tok token.Token) *tree.Node {
	return stringAggregate(tok.Span, tok.Value.Str)
}

// stringAggregate builds the positional-reference-to-character aggregate a
// string literal desugars to. It is also used to synthesise the default
// assertion message, which is specified as if it were parsed from source
// text.
func stringAggregate(span loc.Span, s string) *tree.Node {
	var assocs []*tree.Node
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0x81 {
			continue
		}
		ref := tree.NewUnresolvedRef(span, ident.New("'"+string(c)+"'"))
		assocs = append(assocs, tree.NewAssocPositional(ref))
	}
	return tree.NewAggregate(span, assocs...)
}

// parseName disambiguates `identifier`, `identifier(...)` function calls,
// and `identifier(...)` slice names: after reading the left paren and the
// first expression, the next token decides.
func (p *Parser) parseName() *tree.Node {
	defer p.begin("name")()

	idTok := p.consume(token.Ident)
	name := ident.New(idTok.Value.Str)

	if p.peek().Kind != token.LParen {
		return tree.NewUnresolvedRef(idTok.Span, name)
	}

	p.consume(token.LParen)
	first := p.parseExpr()

	switch p.peek().Kind {
	case token.Comma, token.RParen:
		defer p.extend("function call")()
		var args []*tree.Node
		args = append(args, first)
		for p.optional(token.Comma) {
			args = append(args, p.parseExpr())
		}
		p.consume(token.RParen)
		call := tree.New(tree.KFCall)
		call.Ident = name
		call.Span = p.currentLoc()
		for _, a := range args {
			call.Params = append(call.Params, tree.NewAssocPositional(a))
		}
		return call

	case token.To, token.Downto:
		defer p.extend("slice name")()
		dir := tree.DirTo
		if p.peek().Kind == token.Downto {
			dir = tree.DirDownto
		}
		p.consume(p.peek().Kind)
		right := p.parseExpr()
		p.consume(token.RParen)

		slice := tree.New(tree.KArraySlice)
		slice.Ident = name
		slice.Left = first
		slice.Right = right
		slice.Dir = dir
		slice.Span = p.currentLoc()
		return slice

	default:
		p.oneOf(token.Comma, token.RParen, token.To, token.Downto)
		p.consume(token.RParen)
		return tree.NewUnresolvedRef(idTok.Span, name)
	}
}

// parseAggregateTail finishes an aggregate whose first association's value
// (or key, if `first => value` follows) has already been parsed as `first`.
func (p *Parser) parseAggregateTail(first *tree.Node) *tree.Node {
	assocs := []*tree.Node{p.parseAssocTail(first)}
	for p.optional(token.Comma) {
		assocs = append(assocs, p.parseAssoc())
	}
	rparen := p.consume(token.RParen)
	return tree.NewAggregate(loc.Merge(first.Span, rparen.Span), assocs...)
}

// parseAssoc parses one element association of an aggregate.
func (p *Parser) parseAssoc() *tree.Node {
	if p.optional(token.Others) {
		p.consume(token.Arrow)
		return tree.NewAssocOthers(p.parseExpr())
	}
	first := p.parseExpr()
	return p.parseAssocTail(first)
}

// parseAssocTail decides, given the expression already parsed as `first`,
// whether this is a positional, named, or ranged association.
func (p *Parser) parseAssocTail(first *tree.Node) *tree.Node {
	switch p.peek().Kind {
	case token.Arrow:
		p.consume(token.Arrow)
		return tree.NewAssocNamed(first, p.parseExpr())
	case token.To, token.Downto:
		dir := tree.DirTo
		if p.peek().Kind == token.Downto {
			dir = tree.DirDownto
		}
		p.consume(p.peek().Kind)
		right := p.parseExpr()
		p.consume(token.Arrow)
		return tree.NewAssocRanged(first, right, dir, p.parseExpr())
	default:
		return tree.NewAssocPositional(first)
	}
}
