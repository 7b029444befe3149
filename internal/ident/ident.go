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

// Package ident implements the identifier-interning pool used by the parser
// and evaluator. Every name that flows into the tree - entity names, port
// names, operator spellings, synthesised statement labels - is interned so
// that equality becomes a pointer (here, an integer) comparison instead of a
// string comparison.
package ident

import "sync"

// ID is an interned identifier. The zero value is not a valid identifier;
// use Empty to test for "no identifier".
type ID int32

// Empty is the sentinel returned for an absent identifier.
const Empty ID = 0

// pool is the single process-wide interning table, shared by the parser
// and the evaluator. A mutex guards it even though a single parse is
// single-threaded, since tests may intern concurrently across independent
// parses.
type pool struct {
	mu      sync.Mutex
	byText  map[string]ID
	byID    []string
	suffix  map[string]int // bookkeeping for Uniq's suffix generator
}

var global = &pool{
	byText: map[string]ID{"": 0},
	byID:   []string{""},
	suffix: map[string]int{},
}

// New interns text, returning the same ID for every call with equal text.
func New(text string) ID {
	global.mu.Lock()
	defer global.mu.Unlock()
	if id, ok := global.byText[text]; ok {
		return id
	}
	id := ID(len(global.byID))
	global.byID = append(global.byID, text)
	global.byText[text] = id
	return id
}

// Text returns the original text of an interned identifier.
func (id ID) Text() string {
	global.mu.Lock()
	defer global.mu.Unlock()
	if int(id) < 0 || int(id) >= len(global.byID) {
		return ""
	}
	return global.byID[id]
}

func (id ID) String() string { return id.Text() }

// Valid reports whether id denotes an interned (non-empty) identifier.
func (id ID) Valid() bool { return id != Empty }

// Uniq generates an identifier starting with base that has not been
// returned by Uniq (or interned via New) before, appending a letter suffix
// ("a", "b", ..., "z", "aa", ...) until the text is unused. This backs the
// parser's synthesis of statement labels such as line_42, line_42a.
func Uniq(base string) ID {
	global.mu.Lock()
	defer global.mu.Unlock()
	if _, taken := global.byText[base]; !taken {
		return internLocked(base)
	}
	for n := global.suffix[base]; ; n++ {
		candidate := base + suffixLetters(n)
		if _, taken := global.byText[candidate]; !taken {
			global.suffix[base] = n + 1
			return internLocked(candidate)
		}
	}
}

// internLocked assumes global.mu is already held.
func internLocked(text string) ID {
	id := ID(len(global.byID))
	global.byID = append(global.byID, text)
	global.byText[text] = id
	return id
}

// suffixLetters renders n (0-based) as a base-26 lowercase letter sequence:
// 0 -> "a", 1 -> "b", ..., 25 -> "z", 26 -> "aa", ...
func suffixLetters(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	if n < 26 {
		return string(alphabet[n])
	}
	return suffixLetters(n/26-1) + string(alphabet[n%26])
}
