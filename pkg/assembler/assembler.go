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

// Package assembler turns preprocessed source lines into a relocated word
// image in two passes. The first pass classifies each line, collects labels
// and data and sizes every instruction. The second pass encodes the
// instructions against the complete symbol table.
package assembler

import (
	"io"

	"github.com/lassandro/qasm/pkg/isa"
	"github.com/lassandro/qasm/pkg/macro"
	"github.com/lassandro/qasm/pkg/source"
)

// Program is the result of one assembly run. The image starts at
// isa.BASE_ADDRESS with the instruction words followed by the data words.
type Program struct {
	Instructions []uint16
	Data         []uint16
	Symbols      *SymbolTable
	Externals    []ExternalUse
	Warnings     []error
}

func (program *Program) Image() []uint16 {
	var image = make([]uint16, 0, len(program.Instructions)+len(program.Data))
	image = append(image, program.Instructions...)
	return append(image, program.Data...)
}

// Assemble runs both passes over lines. The returned program is only
// usable when no errors are returned; its warnings are always set. When
// debug is non-nil it is filled with the source line of every instruction
// and the label at every defined address.
func Assemble(lines []source.Line, debug *DebugTable) (*Program, []error) {
	var asm = newAssembly()
	var program = &Program{Symbols: asm.symbols}

	if debug != nil {
		if debug.Lines == nil {
			debug.Lines = make(map[uint16]int)
		}

		if debug.Labels == nil {
			debug.Labels = make(map[uint16]string)
		}
	}

	ok := asm.firstPass(lines)
	program.Warnings = asm.warnings

	if !ok {
		return program, asm.errs
	}

	instructions, externals, ok := asm.secondPass(debug)

	if !ok {
		return program, asm.errs
	}

	program.Instructions = instructions
	program.Data = asm.data.Words()
	program.Externals = externals

	if debug != nil {
		// The first label defined at an address names it
		for _, symbol := range asm.symbols.Symbols() {
			if _, taken := debug.Labels[symbol.Address]; !taken && !symbol.IsExternal {
				debug.Labels[symbol.Address] = symbol.Name
			}
		}
	}

	return program, asm.errs
}

// AssembleSource reads, preprocesses and assembles a whole file. The
// expanded lines are returned whenever preprocessing succeeded.
func AssembleSource(input io.Reader, maxMacros int, debug *DebugTable) (*Program, []source.Line, []error) {
	lines, err := source.ReadLines(input)

	if err != nil {
		return nil, nil, []error{err}
	}

	expanded, err := macro.Preprocess(lines, maxMacros)

	if err != nil {
		return nil, nil, []error{err}
	}

	program, errs := Assemble(expanded, debug)

	return program, expanded, errs
}

// Size of the image in words, excluding the load offset
func (program *Program) Size() int {
	return len(program.Instructions) + len(program.Data)
}

// End is the first address past the image
func (program *Program) End() int {
	return isa.BASE_ADDRESS + program.Size()
}
