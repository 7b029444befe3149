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

// Package parser implements a hand-written recursive-descent recogniser,
// with one- and two-token lookahead, for the supported VHDL-like subset. It
// converts a token.Scanner's stream into a tree.Node and recovers from
// errors using a report-suppression-after-cascade heuristic rather than
// aborting on the first mismatch.
package parser

import "github.com/nickg/nvcfront/internal/token"

// lookahead buffers at most two pre-fetched tokens from a token.Scanner and
// exposes the peek/peek2/advance/scan primitives that Parser's
// consume/optional/oneOf are built from.
type lookahead struct {
	scanner token.Scanner

	tok1, tok2   token.Token
	have1, have2 bool
}

func newLookahead(scanner token.Scanner) *lookahead {
	return &lookahead{scanner: scanner}
}

// peek returns the next token without consuming it, fetching it from the
// scanner if it is not already cached.
func (la *lookahead) peek() token.Token {
	if !la.have1 {
		la.tok1 = la.scanner.NextToken()
		la.have1 = true
	}
	return la.tok1
}

// peek2 returns the token after the one peek would return. The peek2 slot
// is only meaningful once peek has been primed.
func (la *lookahead) peek2() token.Token {
	la.peek()
	if !la.have2 {
		la.tok2 = la.scanner.NextToken()
		la.have2 = true
	}
	return la.tok2
}

// advance consumes and returns the head token, shifting peek2 into peek's
// slot if it was populated.
func (la *lookahead) advance() token.Token {
	head := la.peek()
	if la.have2 {
		la.tok1 = la.tok2
		la.have1 = true
		la.have2 = false
	} else {
		la.have1 = false
	}
	return head
}

// scan reports whether the head token's kind belongs to set, without
// consuming it.
func (la *lookahead) scan(set ...token.Kind) bool {
	head := la.peek().Kind
	for _, k := range set {
		if head == k {
			return true
		}
	}
	return false
}
