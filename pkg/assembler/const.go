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

const (
	STATEMENT_EMPTY StatementType = iota
	STATEMENT_COMMENT
	STATEMENT_LABEL_ONLY
	STATEMENT_DIRECTIVE
	STATEMENT_INSTRUCTION
)

// Addressing modes, as encoded in the 3-bit mode fields of the main word
const (
	MODE_IMMEDIATE OperandMode = 0
	MODE_DIRECT    OperandMode = 1
	MODE_REGISTER  OperandMode = 2
	MODE_MATRIX    OperandMode = 3
)

// Extra words each addressing mode adds after the main word. The first pass
// sizes instructions with this table and the encoder emits exactly this many
// words, so both passes agree on every address.
var operandCost = [...]int{
	MODE_IMMEDIATE: 1,
	MODE_DIRECT:    1,
	MODE_REGISTER:  0,
	MODE_MATRIX:    2,
}

// Main word layout
// ---- [ opcode | src mode | src reg | dst mode | dst reg ]
// ---- [ _ _ _ _ | _ _ _    | _ _ _   | _ _ _    | _ _ _   ]
const (
	SHIFT_OPCODE   = 12
	SHIFT_SRC_MODE = 9
	SHIFT_SRC_REG  = 6
	SHIFT_DST_MODE = 3
	SHIFT_DST_REG  = 0

	MATRIX_ROW_SHIFT = 3
)

const (
	LITERAL_MIN = -32768
	LITERAL_MAX = 32767

	MATRIX_DIMENSION_MAX = 32767
)
