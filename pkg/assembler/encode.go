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
	"github.com/lassandro/qasm/pkg/isa"
)

// operand is a resolved instruction operand. Words are the extra words it
// adds after the main word; when External is set, Words[0] refers to that
// external symbol.
type operand struct {
	Mode     OperandMode
	Register uint16
	Words    []uint16
	External string
}

type encoder struct {
	symbols *SymbolTable
}

// encode builds the words of one instruction placed at pc. Nothing is
// returned besides the errors when the instruction is invalid.
func (enc *encoder) encode(stmt *Statement, pc uint16) ([]uint16, []ExternalUse, []error) {
	if stmt.Instruction == isa.INSTRUCTION_INVALID {
		return nil, nil, []error{
			&UnknownInstructionError{stmt.Keyword.Position, stmt.Keyword.Value},
		}
	}

	var tokens = splitOperands(stmt.Args)
	var arity = stmt.Instruction.Arity()

	if len(tokens) != arity {
		return nil, nil, []error{&InvalidNumArgumentsError{
			stmt.Keyword.Position, arity, len(tokens),
		}}
	}

	var errs []error
	var operands = make([]operand, 0, arity)

	for _, token := range tokens {
		op, err := enc.resolve(token)

		if err != nil {
			errs = append(errs, err)
		}

		operands = append(operands, op)
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}

	var word = uint16(stmt.Instruction) << SHIFT_OPCODE

	switch arity {
	case 2:
		word |= uint16(operands[0].Mode) << SHIFT_SRC_MODE
		word |= operands[0].Register << SHIFT_SRC_REG
		word |= uint16(operands[1].Mode) << SHIFT_DST_MODE
		word |= operands[1].Register << SHIFT_DST_REG
	case 1:
		word |= uint16(operands[0].Mode) << SHIFT_DST_MODE
		word |= operands[0].Register << SHIFT_DST_REG
	}

	var words = []uint16{word}
	var uses []ExternalUse

	for _, op := range operands {
		if op.External != "" {
			uses = append(uses, ExternalUse{
				Name:    op.External,
				Address: pc + uint16(len(words)),
			})
		}

		words = append(words, op.Words...)
	}

	return words, uses, nil
}

func (enc *encoder) resolve(token Token) (operand, error) {
	var op = operand{Mode: classifyOperand(token)}

	if token.Value == "" {
		return op, &MissingOperandError{token.Position}
	}

	switch op.Mode {
	// #-5
	case MODE_IMMEDIATE:
		value, err := parseLiteral(token.slice(1, len(token.Value)))

		if err != nil {
			return op, err
		}

		op.Words = []uint16{value}

	// r3
	case MODE_REGISTER:
		op.Register, _ = isa.ParseRegister(token.Value)

	// M1[r2][r7]
	case MODE_MATRIX:
		match := matrixPattern.FindStringSubmatchIndex(token.Value)

		label := token.slice(match[2], match[3])
		rowToken := token.slice(match[4], match[5])
		colToken := token.slice(match[6], match[7])

		row, ok := isa.ParseRegister(rowToken.Value)

		if !ok {
			return op, &InvalidRegisterError{rowToken.Position}
		}

		col, ok := isa.ParseRegister(colToken.Value)

		if !ok {
			return op, &InvalidRegisterError{colToken.Position}
		}

		symbol, exists := enc.symbols.Lookup(label.Value)

		if !exists {
			return op, &UnknownLabelError{label.Position, label.Value}
		}

		if symbol.IsExternal {
			op.External = symbol.Name
		}

		op.Words = []uint16{symbol.Address, row<<MATRIX_ROW_SHIFT | col}

	// LABEL
	default:
		symbol, exists := enc.symbols.Lookup(token.Value)

		if !exists {
			return op, &UnknownLabelError{token.Position, token.Value}
		}

		if symbol.IsExternal {
			op.External = symbol.Name
		}

		op.Words = []uint16{symbol.Address}
	}

	return op, nil
}
