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

// secondPass encodes every instruction against the relocated symbol table
// and marks entries. It returns false when the encoded size of an
// instruction disagrees with the first pass.
func (asm *assembly) secondPass(debug *DebugTable) ([]uint16, []ExternalUse, bool) {
	var enc = encoder{symbols: asm.symbols}
	var instructions = make([]uint16, 0, asm.ic)
	var externals []ExternalUse
	var pc = uint16(isa.BASE_ADDRESS)

	for i := range asm.statements {
		stmt := &asm.statements[i]

		if stmt.Type == STATEMENT_DIRECTIVE {
			if stmt.Directive == isa.DIRECTIVE_ENTRY {
				if err := asm.markEntry(stmt.Args); err != nil {
					asm.errs = append(asm.errs, err)
				}
			}

			continue
		}

		cost := instructionCost(stmt)
		words, uses, errs := enc.encode(stmt, pc)

		if len(errs) > 0 {
			asm.errs = append(asm.errs, errs...)
			words = make([]uint16, cost)
			uses = nil
		} else if len(words) != cost {
			asm.errs = append(asm.errs, &WordCountMismatchError{
				stmt.Keyword.Position, cost, len(words),
			})

			return nil, nil, false
		}

		if debug != nil && cost > 0 {
			debug.Lines[pc] = stmt.Line
		}

		instructions = append(instructions, words...)
		externals = append(externals, uses...)
		pc += uint16(cost)
	}

	return instructions, externals, true
}

// .entry NAME
func (asm *assembly) markEntry(name Token) error {
	if name.Value == "" {
		return &MissingOperandError{name.Position}
	}

	return asm.symbols.MarkEntry(name.Value, name.Position)
}
