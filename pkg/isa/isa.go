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

// Package isa describes the instruction set: mnemonics, operand counts,
// registers, directive names and the words that cannot be used as labels.
package isa

import (
	"strings"
)

var mnemonics = [...]string{
	INSTRUCTION_MOV:  "MOV",
	INSTRUCTION_CMP:  "CMP",
	INSTRUCTION_ADD:  "ADD",
	INSTRUCTION_SUB:  "SUB",
	INSTRUCTION_LEA:  "LEA",
	INSTRUCTION_CLR:  "CLR",
	INSTRUCTION_NOT:  "NOT",
	INSTRUCTION_INC:  "INC",
	INSTRUCTION_DEC:  "DEC",
	INSTRUCTION_JMP:  "JMP",
	INSTRUCTION_BNE:  "BNE",
	INSTRUCTION_JSR:  "JSR",
	INSTRUCTION_RED:  "RED",
	INSTRUCTION_PRN:  "PRN",
	INSTRUCTION_RTS:  "RTS",
	INSTRUCTION_STOP: "STOP",
}

var arity = [...]int{
	INSTRUCTION_MOV:  2,
	INSTRUCTION_CMP:  2,
	INSTRUCTION_ADD:  2,
	INSTRUCTION_SUB:  2,
	INSTRUCTION_LEA:  2,
	INSTRUCTION_CLR:  1,
	INSTRUCTION_NOT:  1,
	INSTRUCTION_INC:  1,
	INSTRUCTION_DEC:  1,
	INSTRUCTION_JMP:  1,
	INSTRUCTION_BNE:  1,
	INSTRUCTION_JSR:  1,
	INSTRUCTION_RED:  1,
	INSTRUCTION_PRN:  1,
	INSTRUCTION_RTS:  0,
	INSTRUCTION_STOP: 0,
}

var directives = map[string]DirectiveType{
	"data":   DIRECTIVE_DATA,
	"string": DIRECTIVE_STRING,
	"mat":    DIRECTIVE_MAT,
	"entry":  DIRECTIVE_ENTRY,
	"extern": DIRECTIVE_EXTERN,
}

func ParseInstruction(ident string) InstructionType {
	for instruction, mnemonic := range mnemonics {
		if strings.EqualFold(ident, mnemonic) {
			return InstructionType(instruction)
		}
	}

	return INSTRUCTION_INVALID
}

// Parses the directive name that follows the dot, i.e. "data" for ".data"
func ParseDirective(ident string) DirectiveType {
	if directive, ok := directives[strings.ToLower(ident)]; ok {
		return directive
	}

	return DIRECTIVE_INVALID
}

func ParseRegister(ident string) (uint16, bool) {
	if len(ident) != 2 || (ident[0] != 'r' && ident[0] != 'R') {
		return 0, false
	}

	if ident[1] < '0' || ident[1] >= '0'+REGISTER_COUNT {
		return 0, false
	}

	return uint16(ident[1] - '0'), true
}

func (instruction InstructionType) String() string {
	if instruction >= INSTRUCTION_INVALID {
		return "<invalid>"
	}

	return mnemonics[instruction]
}

// Number of operands the instruction takes
func (instruction InstructionType) Arity() int {
	if instruction >= INSTRUCTION_INVALID {
		return 0
	}

	return arity[instruction]
}

func (directive DirectiveType) String() string {
	for name, value := range directives {
		if value == directive {
			return "." + name
		}
	}

	return "<invalid>"
}

// Data directives place words in the data segment
func (directive DirectiveType) IsData() bool {
	return directive == DIRECTIVE_DATA ||
		directive == DIRECTIVE_STRING ||
		directive == DIRECTIVE_MAT
}

// IsIdentifier reports whether s is a letter followed by up to 30 letters,
// digits or underscores.
func IsIdentifier(s string) bool {
	if len(s) == 0 || len(s) > MAX_LABEL_LENGTH || !isLetter(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}

	return true
}

// IsReserved reports whether s names an instruction, a register, a directive
// or a macro keyword, ignoring case.
func IsReserved(s string) bool {
	if ParseInstruction(s) != INSTRUCTION_INVALID {
		return true
	}

	if _, ok := ParseRegister(s); ok {
		return true
	}

	if ParseDirective(s) != DIRECTIVE_INVALID {
		return true
	}

	return strings.EqualFold(s, KEYWORD_MACRO) ||
		strings.EqualFold(s, KEYWORD_ENDM)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
