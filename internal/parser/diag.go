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
	"fmt"
	"strings"

	"github.com/nickg/nvcfront/internal/loc"
	"github.com/nickg/nvcfront/internal/token"
)

// recoverThresh is the number of consecutive correctly-matched tokens the
// diagnostic controller requires before it will report another error. It
// exists so that one mis-synchronisation does not cascade into a flood of
// follow-on "expected X" messages: the parser keeps parsing, but stays
// quiet until it has found its footing again.
const recoverThresh = 5

// Diagnostic is a single reported parse error: what was being parsed
// (Hint), where, and the human-readable Message.
type Diagnostic struct {
	Span    loc.Span
	Hint    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (while parsing %s)", d.Span, d.Message, d.Hint)
}

// diagController tracks the report-suppression-after-cascade error policy:
// nCorrect counts consecutive matching consumes, reset to zero on any
// mismatch; an error is only emitted when nCorrect has reached
// recoverThresh since the last one.
type diagController struct {
	diagnostics []Diagnostic
	nCorrect    int
}

func (d *diagController) noteMatch() { d.nCorrect++ }

func (d *diagController) noteMismatch(span loc.Span, hint, message string) {
	if d.nCorrect >= recoverThresh {
		d.diagnostics = append(d.diagnostics, Diagnostic{Span: span, Hint: hint, Message: message})
	}
	d.nCorrect = 0
}

// errorCount returns the number of diagnostics actually reported (i.e.
// after suppression).
func (d *diagController) errorCount() int { return len(d.diagnostics) }

func expectedMessage(want token.Kind, got token.Token) string {
	return fmt.Sprintf("expected %s but found %s", want, got.Kind)
}

func oneOfMessage(set []token.Kind, got token.Token) string {
	names := make([]string, len(set))
	for i, k := range set {
		names[i] = k.String()
	}
	return fmt.Sprintf("unexpected %s, expecting one of %s", got.Kind, strings.Join(names, ", "))
}
