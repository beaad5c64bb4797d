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
	"regexp"

	"github.com/lassandro/qasm/pkg/isa"
)

// label[rX][rY]
var matrixPattern = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]*)\]\[([^\[\]]*)\]$`)

func (mode OperandMode) Cost() int {
	if int(mode) >= len(operandCost) {
		return 0
	}

	return operandCost[mode]
}

func (mode OperandMode) String() string {
	switch mode {
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_DIRECT:
		return "direct"
	case MODE_REGISTER:
		return "register"
	case MODE_MATRIX:
		return "matrix"
	}

	return "<invalid>"
}

// classifyOperand picks the addressing mode from the operand's shape alone.
// Whether the operand is otherwise valid is checked by the encoder.
func classifyOperand(op Token) OperandMode {
	switch {
	case len(op.Value) > 0 && op.Value[0] == '#':
		return MODE_IMMEDIATE
	case isRegister(op.Value):
		return MODE_REGISTER
	case matrixPattern.MatchString(op.Value):
		return MODE_MATRIX
	}

	return MODE_DIRECT
}

func isRegister(s string) bool {
	_, ok := isa.ParseRegister(s)
	return ok
}

func splitOperands(args Token) []Token {
	if args.Value == "" {
		return nil
	}

	return args.split(',')
}

// instructionCost is the number of words an instruction statement occupies.
// Unknown mnemonics occupy none.
func instructionCost(stmt *Statement) int {
	if stmt.Instruction == isa.INSTRUCTION_INVALID {
		return 0
	}

	if stmt.Instruction.Arity() == 0 {
		return 1
	}

	var cost = 1
	var operands = splitOperands(stmt.Args)

	for i := 0; i < len(operands) && i < 2; i++ {
		cost += classifyOperand(operands[i]).Cost()
	}

	return cost
}
