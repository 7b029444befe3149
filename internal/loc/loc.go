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

// Package loc tracks source spans: the file a span came from, its first and
// last line/column, and the raw text of the line it starts on (kept around
// for diagnostic printers that want to underline the offending token).
package loc

import "fmt"

// Span is a range over a source file, inclusive of both endpoints as nvc's
// own loc_t is.
type Span struct {
	File      string
	FirstLine int
	FirstCol  int
	LastLine  int
	LastCol   int
	LineText  string
}

// Invalid is the sentinel span used before a production has consumed its
// first token.
var Invalid = Span{}

// IsValid reports whether s carries real position information.
func (s Span) IsValid() bool { return s != Invalid }

// Merge returns the span covering both s (the earlier span) and end (the
// later one): the earlier start, the later end, the starting span's file
// and line text. Merging with an invalid span on either side returns the
// other span unchanged, matching CURRENT_LOC's behaviour of falling back to
// the first token consumed in a production.
func Merge(start, end Span) Span {
	if !start.IsValid() {
		return end
	}
	if !end.IsValid() {
		return start
	}
	return Span{
		File:      start.File,
		FirstLine: start.FirstLine,
		FirstCol:  start.FirstCol,
		LastLine:  end.LastLine,
		LastCol:   end.LastCol,
		LineText:  start.LineText,
	}
}

func (s Span) String() string {
	if !s.IsValid() {
		return "-"
	}
	if s.FirstLine == s.LastLine {
		return fmt.Sprintf("%s:%d:%d-%d", s.File, s.FirstLine, s.FirstCol, s.LastCol)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.FirstLine, s.FirstCol, s.LastLine, s.LastCol)
}
