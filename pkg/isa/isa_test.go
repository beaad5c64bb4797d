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

package isa_test

import (
	"testing"

	"github.com/lassandro/qasm/pkg/isa"
)

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		Input  string
		Output isa.InstructionType
		Arity  int
	}{
		{"MOV", isa.INSTRUCTION_MOV, 2},
		{"mov", isa.INSTRUCTION_MOV, 2},
		{"lea", isa.INSTRUCTION_LEA, 2},
		{"Prn", isa.INSTRUCTION_PRN, 1},
		{"RTS", isa.INSTRUCTION_RTS, 0},
		{"STOP", isa.INSTRUCTION_STOP, 0},
		{"HALT", isa.INSTRUCTION_INVALID, 0},
		{"", isa.INSTRUCTION_INVALID, 0},
	}

	for _, test := range tests {
		have := isa.ParseInstruction(test.Input)

		if have != test.Output {
			t.Fatalf(
				"Instruction mismatch for %q\nwant:%d\nhave:%d",
				test.Input, test.Output, have,
			)
		}

		if arity := have.Arity(); arity != test.Arity {
			t.Fatalf(
				"Arity mismatch for %q\nwant:%d\nhave:%d",
				test.Input, test.Arity, arity,
			)
		}
	}

	if isa.INSTRUCTION_STOP != 15 {
		t.Fatalf("STOP must use the last 4-bit opcode, have:%d", isa.INSTRUCTION_STOP)
	}
}

func TestParseRegister(t *testing.T) {
	for i := 0; i < 8; i++ {
		for _, prefix := range []string{"r", "R"} {
			reg, ok := isa.ParseRegister(prefix + string(rune('0'+i)))

			if !ok || reg != uint16(i) {
				t.Fatalf("Register %s%d not recognized", prefix, i)
			}
		}
	}

	for _, ident := range []string{"r8", "r", "r01", "x1", "R-1", " r1"} {
		if _, ok := isa.ParseRegister(ident); ok {
			t.Fatalf("Unexpected register %q", ident)
		}
	}
}

func TestParseDirective(t *testing.T) {
	tests := map[string]isa.DirectiveType{
		"data":   isa.DIRECTIVE_DATA,
		"STRING": isa.DIRECTIVE_STRING,
		"mat":    isa.DIRECTIVE_MAT,
		"entry":  isa.DIRECTIVE_ENTRY,
		"extern": isa.DIRECTIVE_EXTERN,
		"fill":   isa.DIRECTIVE_INVALID,
		"":       isa.DIRECTIVE_INVALID,
	}

	for input, want := range tests {
		if have := isa.ParseDirective(input); have != want {
			t.Fatalf("Directive mismatch for %q\nwant:%d\nhave:%d", input, want, have)
		}
	}

	if !isa.DIRECTIVE_MAT.IsData() || isa.DIRECTIVE_ENTRY.IsData() {
		t.Fatal("Data directive classification mismatch")
	}
}

func TestIdentifiers(t *testing.T) {
	valid := []string{"my_label", "L", "Loop2", "abcdefghijabcdefghijabcdefghij1"}
	invalid := []string{"", "1abc", "_abc", "ab-c", "abcdefghijabcdefghijabcdefghij12"}

	for _, ident := range valid {
		if !isa.IsIdentifier(ident) {
			t.Fatalf("Identifier %q rejected", ident)
		}
	}

	for _, ident := range invalid {
		if isa.IsIdentifier(ident) {
			t.Fatalf("Identifier %q accepted", ident)
		}
	}

	for _, word := range []string{"mov", "r7", "data", "STOP", "endm", "Macro"} {
		if !isa.IsReserved(word) {
			t.Fatalf("Reserved word %q not recognized", word)
		}
	}

	if isa.IsReserved("mylabel") {
		t.Fatal("mylabel is not a reserved word")
	}
}
