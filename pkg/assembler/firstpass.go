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
	"github.com/lassandro/qasm/pkg/source"
)

// assembly is the state of a single run over one file
type assembly struct {
	statements []Statement
	symbols    *SymbolTable
	data       DataSegment
	ic         int

	errs     []error
	warnings []error
}

func newAssembly() *assembly {
	return &assembly{symbols: NewSymbolTable()}
}

// firstPass classifies every line, collects labels and data and counts
// instruction words. It returns false when the run cannot continue.
func (asm *assembly) firstPass(lines []source.Line) bool {
	asm.statements = make([]Statement, 0, len(lines))

	for _, line := range lines {
		stmt, err := ParseLine(line)

		if err != nil {
			asm.errs = append(asm.errs, err)
			continue
		}

		switch stmt.Type {
		case STATEMENT_EMPTY, STATEMENT_COMMENT:
			continue

		case STATEMENT_LABEL_ONLY:
			asm.warnings = append(asm.warnings, &IgnoredLabelWarning{
				stmt.Label.Position, stmt.Label.Value,
			})

			continue
		}

		asm.statements = append(asm.statements, stmt)

		if stmt.Label != nil {
			isData := stmt.Type == STATEMENT_DIRECTIVE && stmt.Directive.IsData()
			address := asm.ic

			if isData {
				address = asm.data.Len()
			}

			err := asm.symbols.Define(
				stmt.Label.Value, uint16(address), isData, stmt.Label.Position,
			)

			if err != nil {
				asm.errs = append(asm.errs, err)
			}
		}

		if stmt.Type == STATEMENT_INSTRUCTION {
			asm.ic += instructionCost(&stmt)
			continue
		}

		switch stmt.Directive {
		case isa.DIRECTIVE_DATA, isa.DIRECTIVE_STRING, isa.DIRECTIVE_MAT:
			asm.errs = append(asm.errs, asm.data.appendDirective(&stmt)...)

		case isa.DIRECTIVE_EXTERN:
			if err := asm.defineExternal(stmt.Args); err != nil {
				asm.errs = append(asm.errs, err)
			}
		}
	}

	if size := isa.BASE_ADDRESS + asm.ic + asm.data.Len(); size > isa.MEMORY_SIZE {
		asm.errs = append(asm.errs, &OversizedBinaryError{
			isa.MEMORY_SIZE - isa.BASE_ADDRESS, asm.ic + asm.data.Len(),
		})

		return false
	}

	if err := asm.symbols.RelocateData(uint16(asm.ic)); err != nil {
		asm.errs = append(asm.errs, err)
		return false
	}

	if err := asm.symbols.RelocateAll(isa.BASE_ADDRESS); err != nil {
		asm.errs = append(asm.errs, err)
		return false
	}

	return true
}

// .extern NAME
func (asm *assembly) defineExternal(name Token) error {
	switch {
	case name.Value == "":
		return &MissingOperandError{name.Position}
	case !isa.IsIdentifier(name.Value):
		return &InvalidLabelError{name.Position, name.Value}
	case isa.IsReserved(name.Value):
		return &ReservedLabelError{name.Position, name.Value}
	}

	return asm.symbols.DefineExternal(name.Value, name.Position)
}
