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
	"fmt"

	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/tree"
)

// EvalFatal is raised when the interpreter cannot proceed on what the
// caller guaranteed was constant: an unbound reference, a non-constant
// aggregate, or a statement/expression kind the folded-body interpreter
// does not support. It is always the caller's bug, never an end-user
// error - callers must only invoke Eval on calls already known to be pure
// and constant-argumented.
type EvalFatal struct {
	Loc     loc.Span
	Message string
}

func (e *EvalFatal) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

func fatal(span loc.Span, format string, args ...any) error {
	return &EvalFatal{Loc: span, Message: fmt.Sprintf(format, args...)}
}

// Eval folds call, a function-call node, as far as it will go: built-in
// operators delegate to FoldCall; calls to a user function body are
// interpreted by pushing a fresh frame, binding parameters, and running the
// body. It returns a folded literal, or call itself unchanged if folding
// is not possible - never nil without an error. A node that is already a
// constant (a literal, a boolean reference or a constant aggregate) is
// returned unchanged, so Eval applied to its own result gives that result.
func Eval(call *tree.Node) (*tree.Node, error) {
	if isFolded(call) {
		return call, nil
	}
	return evalCall(call, &Table{})
}

func evalCall(call *tree.Node, tbl *Table) (*tree.Node, error) {
	if call.Kind != tree.KFCall {
		return nil, fatal(call.Span, "eval requires a function-call node, got %s", call.Kind)
	}
	if call.Referent == nil {
		return call, nil
	}

	args := make([]*tree.Node, len(call.Params))
	for i, p := range call.Params {
		v, err := evalExpr(p.Value, tbl)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if b := call.Referent.Builtin(); b != "" {
		if folded, ok := FoldCall(b, args, call.Span); ok {
			return folded, nil
		}
		return call, nil
	}

	if call.Referent.Kind == tree.KFuncBody {
		// Open question per the design notes: arguments must be raw
		// literals here, even though the built-in folder itself also
		// accepts booleans and aggregates. The more restrictive behaviour
		// is preserved deliberately.
		for _, a := range args {
			if !isIntLit(a) && !isRealLit(a) {
				return call, nil
			}
		}
		return evalBody(call, args)
	}

	return call, nil
}

func evalBody(call *tree.Node, args []*tree.Node) (*tree.Node, error) {
	body := call.Referent
	callee := &Table{}
	callee.Push()
	defer callee.Pop()

	for i, param := range body.Params {
		if i < len(args) {
			callee.Bind(param.Ident, args[i])
		}
	}

	for _, d := range body.Decls {
		if d.Value == nil {
			continue
		}
		v, err := evalExpr(d.Value, callee)
		if err != nil {
			return nil, err
		}
		callee.Bind(d.Ident, v)
	}

	for _, s := range body.Stmts {
		if err := execStmt(s, callee); err != nil {
			return nil, err
		}
		if _, ok := callee.Lookup(ResultIdent); ok {
			break
		}
	}

	if result, ok := callee.Lookup(ResultIdent); ok {
		return result, nil
	}
	return call, nil
}

// execStmt executes one statement of a folded function body. Only a small
// fixed set of statement kinds is supported; anything else is fatal.
func execStmt(s *tree.Node, tbl *Table) error {
	switch s.Kind {
	case tree.KReturn:
		if s.Value == nil {
			tbl.Bind(ResultIdent, tree.NewNullLiteral(s.Span))
			return nil
		}
		v, err := evalExpr(s.Value, tbl)
		if err != nil {
			return err
		}
		tbl.Bind(ResultIdent, v)
		return nil

	case tree.KIf:
		cond, err := evalExpr(s.Value, tbl)
		if err != nil {
			return err
		}
		ord, ok := asBool(cond)
		if !ok {
			return fatal(s.Span, "if condition did not fold to a boolean")
		}
		branch := s.Stmts
		if ord == 0 {
			branch = s.ElseStmts
		}
		return execBlock(branch, tbl)

	case tree.KWhile:
		for {
			cond, err := evalExpr(s.Value, tbl)
			if err != nil {
				return err
			}
			ord, ok := asBool(cond)
			if !ok {
				return fatal(s.Span, "while condition did not fold to a boolean")
			}
			if ord == 0 {
				return nil
			}
			if err := execBlock(s.Stmts, tbl); err != nil {
				return err
			}
			if _, ok := tbl.Lookup(ResultIdent); ok {
				return nil
			}
		}

	case tree.KVarAssign:
		if s.Target.Kind != tree.KRef {
			return fatal(s.Span, "assignment target is not a simple reference")
		}
		v, err := evalExpr(s.Value, tbl)
		if err != nil {
			return err
		}
		if !isFolded(v) {
			return fatal(s.Span, "assigned value did not fold to a constant")
		}
		tbl.Bind(s.Target.Ident, v)
		return nil

	default:
		return fatal(s.Span, "unsupported statement kind %s in folded function body", s.Kind)
	}
}

// execBlock runs stmts in order, stopping early if a result has been
// bound (an enclosing return already fired).
func execBlock(stmts []*tree.Node, tbl *Table) error {
	for _, s := range stmts {
		if err := execStmt(s, tbl); err != nil {
			return err
		}
		if _, ok := tbl.Lookup(ResultIdent); ok {
			return nil
		}
	}
	return nil
}

// evalExpr folds e as far as possible within tbl's scope.
func evalExpr(e *tree.Node, tbl *Table) (*tree.Node, error) {
	switch e.Kind {
	case tree.KFCall:
		return evalCall(e, tbl)

	case tree.KRef:
		if e.Referent != nil {
			return e, nil
		}
		if v, ok := tbl.Lookup(e.Ident); ok {
			return v, nil
		}
		return nil, fatal(e.Span, "unbound reference %q", e.Ident.String())

	case tree.KAggregate:
		if foldedAggregate(e) {
			return e, nil
		}
		return nil, fatal(e.Span, "aggregate is not constant")

	case tree.KLiteral:
		return e, nil

	default:
		return nil, fatal(e.Span, "cannot evaluate expression of kind %s", e.Kind)
	}
}

// isFolded reports whether n is already a constant value: a literal, a
// foldable aggregate, or a boolean reference.
func isFolded(n *tree.Node) bool {
	if n.Kind == tree.KLiteral {
		return true
	}
	if foldedAggregate(n) {
		return true
	}
	_, ok := asBool(n)
	return ok
}
