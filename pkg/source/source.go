// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package source

import (
	"bufio"
	"errors"
	"io"
)

type ErrorKind uint

const (
	ERROR_SYNTAX ErrorKind = iota
	ERROR_SEMANTIC
	ERROR_STRUCTURAL
	ERROR_CONSISTENCY
)

func (kind ErrorKind) String() string {
	switch kind {
	case ERROR_SYNTAX:
		return "Syntax"
	case ERROR_SEMANTIC:
		return "Semantic"
	case ERROR_STRUCTURAL:
		return "Structural"
	case ERROR_CONSISTENCY:
		return "Consistency"
	}

	return "<invalid>"
}

// Cursor locates a span of text in the original source file. Line and Column
// are 1-based, Size is the span length in bytes.
type Cursor struct {
	Line   int
	Column int
	Size   int
}

// Line is one line of source text together with the line number it was read
// from. Lines produced by macro expansion carry the number of the call site.
type Line struct {
	Number int
	Text   string
}

type TokenError interface {
	GetPosition() Cursor
}

type KindError interface {
	Kind() ErrorKind
}

// KindOf reports the category of err, defaulting to ERROR_SEMANTIC for errors
// that don't declare one.
func KindOf(err error) ErrorKind {
	var kindErr KindError

	if errors.As(err, &kindErr) {
		return kindErr.Kind()
	}

	return ERROR_SEMANTIC
}

// Reads input into numbered lines, starting at line 1
func ReadLines(input io.Reader) ([]Line, error) {
	var lines []Line
	var scanner = bufio.NewScanner(input)

	for number := 1; scanner.Scan(); number++ {
		lines = append(lines, Line{Number: number, Text: scanner.Text()})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
