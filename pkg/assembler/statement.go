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

package assembler

import (
	"strings"
	"unicode"

	"github.com/lassandro/qasm/pkg/isa"
	"github.com/lassandro/qasm/pkg/source"
)

// ParseLine classifies a single source line. A returned error means the line
// is malformed and has no further effect on assembly.
func ParseLine(line source.Line) (Statement, error) {
	var stmt = Statement{Type: STATEMENT_EMPTY, Line: line.Number}

	text := Token{
		Position: source.Cursor{Line: line.Number, Column: 1, Size: len(line.Text)},
		Value:    line.Text,
	}

	trimmed := text.slice(0, len(text.Value))

	if trimmed.Value == "" {
		return stmt, nil
	}

	if trimmed.Value[0] == ';' {
		stmt.Type = STATEMENT_COMMENT
		return stmt, nil
	}

	body := text.slice(0, commentStart(text.Value))

	// Label prefix
	if colon := strings.IndexByte(body.Value, ':'); colon > 0 &&
		!strings.ContainsAny(body.Value[:colon], " \t\"") {
		label := body.slice(0, colon)

		if !isa.IsIdentifier(label.Value) {
			return stmt, &InvalidLabelError{label.Position, label.Value}
		}

		if isa.IsReserved(label.Value) {
			return stmt, &ReservedLabelError{label.Position, label.Value}
		}

		stmt.Label = &label
		body = body.slice(colon+1, len(body.Value))

		if body.Value == "" {
			stmt.Type = STATEMENT_LABEL_ONLY
			return stmt, nil
		}
	}

	if body.Value[0] == '.' {
		stmt.Type = STATEMENT_DIRECTIVE
		stmt.Keyword, stmt.Args = body.slice(1, len(body.Value)).fields()

		if stmt.Keyword.Value == "" {
			return stmt, &MissingDirectiveError{body.Position}
		}

		stmt.Directive = isa.ParseDirective(stmt.Keyword.Value)

		if stmt.Directive == isa.DIRECTIVE_INVALID {
			return stmt, &UnknownDirectiveError{
				stmt.Keyword.Position, stmt.Keyword.Value,
			}
		}

		return stmt, nil
	}

	stmt.Type = STATEMENT_INSTRUCTION
	stmt.Keyword, stmt.Args = body.fields()
	stmt.Instruction = isa.ParseInstruction(stmt.Keyword.Value)

	return stmt, nil
}

// Index of the first ';' outside of a double-quoted string
func commentStart(text string) int {
	quoted := false

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				return i
			}
		}
	}

	return len(text)
}

// slice returns tok.Value[start:end] without surrounding whitespace,
// positioned where it sits in the line.
func (tok Token) slice(start, end int) Token {
	s := tok.Value[start:end]
	value := strings.TrimLeftFunc(s, unicode.IsSpace)
	column := tok.Position.Column + start + len(s) - len(value)
	value = strings.TrimRightFunc(value, unicode.IsSpace)

	return Token{
		Position: source.Cursor{
			Line:   tok.Position.Line,
			Column: column,
			Size:   len(value),
		},
		Value: value,
	}
}

// fields splits off the first whitespace-delimited field
func (tok Token) fields() (Token, Token) {
	if i := strings.IndexFunc(tok.Value, unicode.IsSpace); i >= 0 {
		return tok.slice(0, i), tok.slice(i, len(tok.Value))
	}

	rest := tok.slice(len(tok.Value), len(tok.Value))

	return tok, rest
}

// split cuts tok at every sep. Empty pieces are kept.
func (tok Token) split(sep byte) []Token {
	var result []Token
	var start = 0

	for i := 0; i <= len(tok.Value); i++ {
		if i == len(tok.Value) || tok.Value[i] == sep {
			result = append(result, tok.slice(start, i))
			start = i + 1
		}
	}

	return result
}
