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

package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nickg/nvcfront/internal/loc"
)

// Scanner is the interface the parser's lookahead buffer pulls from: one
// token at a time, with no backtracking support of its own (backtracking,
// where needed, is the lookahead buffer's job).
type Scanner interface {
	// NextToken returns the next token in the stream. Past the final token
	// it keeps returning an EOF token.
	NextToken() Token
}

// cursor is the scanner's notion of "where am I", advanced by advancedBy as
// tokens are consumed. Line and column are 1-based.
type cursor struct {
	line, col int
}

func (c cursor) advancedBy(text string) cursor {
	if n := strings.Count(text, "\n"); n > 0 {
		c.line += n
		c.col = 1 + len(text[strings.LastIndex(text, "\n")+1:])
	} else {
		c.col += len(text)
	}
	return c
}

var (
	reWhitespace  = regexp.MustCompile(`^[ \t\r\n]+`)
	reLineComment = regexp.MustCompile(`^--[^\n]*`)
	reIdent       = regexp.MustCompile(`(?i)^[a-z][a-z0-9_]*`)
	reReal        = regexp.MustCompile(`^[0-9][0-9_]*\.[0-9][0-9_]*(?:[eE][+-]?[0-9]+)?`)
	reInt         = regexp.MustCompile(`^[0-9][0-9_]*`)
	reString      = regexp.MustCompile(`^"(?:[^"]|"")*"`)
	reChar        = regexp.MustCompile(`^'(?:[^'\\]|\\.)'`)
)

// punctuation is tried longest-match-first; entries of equal length are
// tried in the order listed.
var punctuation = []struct {
	text string
	kind Kind
}{
	{":=", Assign}, {"<>", Box}, {"=>", Arrow}, {"/=", Neq}, {"<=", Leq},
	{">=", Geq}, {"**", Pow},
	{"(", LParen}, {")", RParen}, {";", Semi}, {":", Colon}, {",", Comma},
	{".", Dot}, {"'", Tick}, {"|", Bar}, {"[", LBracket}, {"]", RBracket},
	{"=", Eq}, {"<", Lt}, {">", Gt}, {"+", Plus}, {"-", Minus}, {"&", Amp},
	{"*", Times}, {"/", Over},
}

// FileScanner tokenises an in-memory source buffer. It is the reference
// implementation of Scanner: real front ends are expected to memory-map the
// source file and feed a similar byte range in.
type FileScanner struct {
	file string
	data string
	pos  int
	cur  cursor
	line string // text of the current physical line, for diagnostics
}

// NewFileScanner wraps data (the full contents of file) in a Scanner.
func NewFileScanner(file, data string) *FileScanner {
	fs := &FileScanner{file: file, data: data, cur: cursor{line: 1, col: 1}}
	fs.line = fs.currentLineText()
	return fs
}

func (fs *FileScanner) currentLineText() string {
	rest := fs.data[fs.lineStart():]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func (fs *FileScanner) lineStart() int {
	if i := strings.LastIndexByte(fs.data[:fs.pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func (fs *FileScanner) span(start cursor, text string) loc.Span {
	end := start.advancedBy(text)
	lastCol := end.col - 1
	if lastCol < start.col {
		lastCol = start.col
	}
	return loc.Span{
		File: fs.file, FirstLine: start.line, FirstCol: start.col,
		LastLine: end.line, LastCol: lastCol, LineText: fs.line,
	}
}

func (fs *FileScanner) advance(text string) {
	fs.pos += len(text)
	fs.cur = fs.cur.advancedBy(text)
	fs.line = fs.currentLineText()
}

// NextToken implements Scanner.
func (fs *FileScanner) NextToken() Token {
	for {
		rest := fs.data[fs.pos:]
		if rest == "" {
			return Token{Kind: EOF, Span: fs.span(fs.cur, "")}
		}
		if m := reWhitespace.FindString(rest); m != "" {
			fs.advance(m)
			continue
		}
		if m := reLineComment.FindString(rest); m != "" {
			fs.advance(m)
			continue
		}
		break
	}

	rest := fs.data[fs.pos:]
	start := fs.cur

	switch {
	case rest[0] == '"':
		if m := reString.FindString(rest); m != "" {
			span := fs.span(start, m)
			fs.advance(m)
			unquoted := strings.ReplaceAll(m[1:len(m)-1], `""`, `"`)
			return Token{Kind: String, Value: Value{Str: unquoted}, Span: span}
		}
	case rest[0] == '\'':
		if m := reChar.FindString(rest); m != "" {
			span := fs.span(start, m)
			fs.advance(m)
			return Token{Kind: CharLit, Value: Value{Str: m[1 : len(m)-1]}, Span: span}
		}
	case isIdentStart(rest[0]):
		if m := reIdent.FindString(rest); m != "" {
			span := fs.span(start, m)
			fs.advance(m)
			if kw, ok := Keywords[strings.ToLower(m)]; ok {
				return Token{Kind: kw, Span: span}
			}
			return Token{Kind: Ident, Value: Value{Str: m}, Span: span}
		}
	case rest[0] >= '0' && rest[0] <= '9':
		if m := reReal.FindString(rest); m != "" {
			span := fs.span(start, m)
			fs.advance(m)
			f, _ := strconv.ParseFloat(strings.ReplaceAll(m, "_", ""), 64)
			return Token{Kind: Real, Value: Value{Real: f}, Span: span}
		}
		if m := reInt.FindString(rest); m != "" {
			span := fs.span(start, m)
			fs.advance(m)
			n, _ := strconv.ParseInt(strings.ReplaceAll(m, "_", ""), 10, 64)
			return Token{Kind: Int, Value: Value{Int: n}, Span: span}
		}
	}

	for _, p := range punctuation {
		if strings.HasPrefix(rest, p.text) {
			span := fs.span(start, p.text)
			fs.advance(p.text)
			return Token{Kind: p.kind, Span: span}
		}
	}

	// Unrecognised byte: consume it as a single-character identifier so the
	// parser can report a precise "unexpected token" error instead of the
	// scanner silently wedging.
	bad := rest[:1]
	span := fs.span(start, bad)
	fs.advance(bad)
	return Token{Kind: Ident, Value: Value{Str: bad}, Span: span}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
