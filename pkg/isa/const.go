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

package isa

type InstructionType uint16
type DirectiveType uint

// Load address of the first instruction word
const BASE_ADDRESS = 100

// Number of addressable words
const MEMORY_SIZE = 1 << 16

const MAX_LABEL_LENGTH = 31

const REGISTER_COUNT = 8

// Instruction values are the 4-bit opcodes placed in the top of the main word
const (
	INSTRUCTION_MOV InstructionType = iota
	INSTRUCTION_CMP
	INSTRUCTION_ADD
	INSTRUCTION_SUB
	INSTRUCTION_LEA
	INSTRUCTION_CLR
	INSTRUCTION_NOT
	INSTRUCTION_INC
	INSTRUCTION_DEC
	INSTRUCTION_JMP
	INSTRUCTION_BNE
	INSTRUCTION_JSR
	INSTRUCTION_RED
	INSTRUCTION_PRN
	INSTRUCTION_RTS
	INSTRUCTION_STOP

	INSTRUCTION_INVALID
)

const (
	DIRECTIVE_INVALID DirectiveType = iota
	DIRECTIVE_DATA
	DIRECTIVE_STRING
	DIRECTIVE_MAT
	DIRECTIVE_ENTRY
	DIRECTIVE_EXTERN
)

const (
	KEYWORD_MACRO = "MACRO"
	KEYWORD_ENDM  = "ENDM"
)
