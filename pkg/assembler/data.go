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
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lassandro/qasm/pkg/encoding"
	"github.com/lassandro/qasm/pkg/isa"
)

// [rows][cols] at the start of a .mat argument list
var matrixHeader = regexp.MustCompile(`^\[([^\[\]]*)\]\s*\[([^\[\]]*)\]`)

// DataSegment collects the words declared by data directives. It is only
// ever appended to.
type DataSegment struct {
	words []uint16
}

func (seg *DataSegment) Append(word uint16) {
	seg.words = append(seg.words, word)
}

func (seg *DataSegment) Len() int {
	return len(seg.words)
}

func (seg *DataSegment) Words() []uint16 {
	return append([]uint16(nil), seg.words...)
}

// appendDirective stores the words of a .data, .string or .mat statement
func (seg *DataSegment) appendDirective(stmt *Statement) []error {
	switch stmt.Directive {
	case isa.DIRECTIVE_DATA:
		return seg.appendData(stmt.Args)
	case isa.DIRECTIVE_STRING:
		return seg.appendString(stmt.Args)
	case isa.DIRECTIVE_MAT:
		return seg.appendMatrix(stmt.Args)
	}

	return nil
}

// .data 7, -57, 17
func (seg *DataSegment) appendData(args Token) []error {
	if args.Value == "" {
		return []error{&MissingOperandError{args.Position}}
	}

	var errs []error

	for _, item := range args.split(',') {
		value, err := parseLiteral(item)

		if err != nil {
			errs = append(errs, err)
		}

		seg.Append(value)
	}

	return errs
}

// .string "abc"
func (seg *DataSegment) appendString(args Token) []error {
	first := strings.IndexByte(args.Value, '"')
	last := strings.LastIndexByte(args.Value, '"')

	if first < 0 || first == last {
		return []error{&InvalidStringError{args.Position}}
	}

	s := args.Value[first+1 : last]

	if !utf8.ValidString(s) {
		return []error{&InvalidStringError{args.Position}}
	}

	for _, char := range s {
		if char > 0xFFFF {
			return []error{&InvalidStringError{args.Position}}
		}
	}

	for _, char := range s {
		seg.Append(uint16(char))
	}

	seg.Append(0)

	return nil
}

// .mat [rows][cols] v1, v2, ...
func (seg *DataSegment) appendMatrix(args Token) []error {
	match := matrixHeader.FindStringSubmatchIndex(args.Value)

	if match == nil {
		return []error{&InvalidMatrixError{args.Position}}
	}

	rows, rowsOk := parseDimension(args.slice(match[2], match[3]))
	cols, colsOk := parseDimension(args.slice(match[4], match[5]))

	if !rowsOk || !colsOk {
		return []error{&InvalidMatrixError{args.slice(0, match[1]).Position}}
	}

	if cells := rows * cols; cells > isa.MEMORY_SIZE {
		return []error{&OversizedLiteralError{
			args.slice(0, match[1]).Position,
			fmt.Sprintf("<=%d cells", isa.MEMORY_SIZE),
			cells,
		}}
	}

	var errs []error
	var cells = make([]uint16, rows*cols)
	var values = args.slice(match[1], len(args.Value))

	if values.Value != "" {
		items := values.split(',')

		for i, item := range items {
			if i >= len(cells) {
				errs = append(errs, &ExcessInitializerError{
					item.Position, len(cells), len(items),
				})

				break
			}

			value, err := parseLiteral(item)

			if err != nil {
				errs = append(errs, err)
			}

			cells[i] = value
		}
	}

	for _, cell := range cells {
		seg.Append(cell)
	}

	return errs
}

func parseDimension(tok Token) (int, bool) {
	value, err := encoding.DecodeInt(tok.Value)

	if err != nil || value < 0 || value > MATRIX_DIMENSION_MAX {
		return 0, false
	}

	return int(value), true
}

// parseLiteral decodes a signed decimal word. On error the returned word
// is 0.
func parseLiteral(tok Token) (uint16, error) {
	if tok.Value == "" {
		return 0, &MissingOperandError{tok.Position}
	}

	value, err := encoding.DecodeInt(tok.Value)

	if err != nil {
		if encoding.IsRangeError(err) {
			return 0, &OversizedLiteralError{
				tok.Position,
				fmt.Sprintf("[%d, %d]", LITERAL_MIN, LITERAL_MAX),
				tok.Value,
			}
		}

		return 0, &InvalidLiteralError{tok.Position}
	}

	return uint16(value), nil
}
