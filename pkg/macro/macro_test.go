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

package macro_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/lassandro/qasm/pkg/macro"
	"github.com/lassandro/qasm/pkg/source"
)

type testCase struct {
	Name      string
	Input     string
	MaxMacros int
	Output    []source.Line
}

type failCase struct {
	Name      string
	Input     string
	MaxMacros int
	Error     error
	Line      int
}

func readLines(t *testing.T, input string) []source.Line {
	lines, err := source.ReadLines(strings.NewReader(input))

	if err != nil {
		t.Fatal(err)
	}

	return lines
}

func testSuccess(t *testing.T, tests []testCase) {
	t.Run("Success", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				have, err := macro.Preprocess(
					readLines(t, test.Input), test.MaxMacros,
				)

				if err != nil {
					t.Fatal(err)
				}

				if !reflect.DeepEqual(have, test.Output) {
					t.Fatalf(
						"Expansion mismatch\n%s",
						strings.Join(pretty.Diff(test.Output, have), "\n"),
					)
				}
			})
		}
	})
}

func testFail(t *testing.T, tests []failCase) {
	t.Run("Fail", func(t *testing.T) {
		for _, test := range tests {
			t.Run(test.Name, func(t *testing.T) {
				_, err := macro.Preprocess(
					readLines(t, test.Input), test.MaxMacros,
				)

				if err == nil {
					t.Fatalf("want:%T\nhave:<nil>", test.Error)
				}

				if reflect.TypeOf(err) != reflect.TypeOf(test.Error) {
					t.Fatalf("want:%T\nhave:%T (%s)", test.Error, err, err)
				}

				position := err.(source.TokenError).GetPosition()

				if position.Line != test.Line {
					t.Fatalf("Error line mismatch\nwant:%d\nhave:%d", test.Line, position.Line)
				}
			})
		}
	})
}

func TestExpand(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:   "No Macros",
			Input:  "MOV r1, r2\n\n; comment\nSTOP",
			Output: []source.Line{{Number: 1, Text: "MOV r1, r2"}, {Number: 2, Text: ""}, {Number: 3, Text: "; comment"}, {Number: 4, Text: "STOP"}},
		},
		{
			Name: "Parameters",
			Input: "MACRO SWAP a, b\n" +
				"\tMOV %a%, r0\n" +
				"\tMOV %b%, %a%\n" +
				"ENDM\n" +
				"SWAP r1, r2\n" +
				"STOP",
			Output: []source.Line{
				{Number: 5, Text: "\tMOV r1, r0"},
				{Number: 5, Text: "\tMOV r2, r1"},
				{Number: 6, Text: "STOP"},
			},
		},
		{
			Name: "Missing Arguments",
			Input: "MACRO SWAP a, b\n" +
				"MOV %a%, %b%\n" +
				"ENDM\n" +
				"SWAP r1",
			Output: []source.Line{{Number: 4, Text: "MOV r1, "}},
		},
		{
			Name: "Excess Arguments",
			Input: "MACRO CLEAR reg\n" +
				"CLR %reg%\n" +
				"ENDM\n" +
				"CLEAR r3, r4, r5",
			Output: []source.Line{{Number: 4, Text: "CLR r3"}},
		},
		{
			Name: "No Parameters",
			Input: "macro HALT\n" +
				"STOP\n" +
				"endm\n" +
				"HALT\n" +
				"HALT",
			Output: []source.Line{{Number: 4, Text: "STOP"}, {Number: 5, Text: "STOP"}},
		},
		{
			Name: "Arguments Are Not Rescanned",
			Input: "MACRO PUT a, b\n" +
				"PRN %a%\n" +
				"ENDM\n" +
				"PUT %b%, #1",
			Output: []source.Line{{Number: 4, Text: "PRN %b%"}},
		},
		{
			Name: "Body Is Not Rescanned",
			Input: "MACRO INNER\n" +
				"STOP\n" +
				"ENDM\n" +
				"MACRO OUTER\n" +
				"INNER\n" +
				"ENDM\n" +
				"OUTER",
			Output: []source.Line{{Number: 7, Text: "INNER"}},
		},
		{
			Name: "Empty Body",
			Input: "MACRO NOTHING\n" +
				"ENDM\n" +
				"NOTHING\n" +
				"STOP",
			Output: []source.Line{{Number: 4, Text: "STOP"}},
		},
		{
			Name: "Name Is Case Sensitive",
			Input: "MACRO m1\n" +
				"STOP\n" +
				"ENDM\n" +
				"M1",
			Output: []source.Line{{Number: 4, Text: "M1"}},
		},
	})

	testFail(t, []failCase{
		{
			Name:  "Missing ENDM",
			Input: "STOP\nMACRO m1\nSTOP\n",
			Error: &macro.MissingEndmError{},
			Line:  2,
		},
		{
			Name:      "Too Many Macros",
			Input:     "MACRO m1\nENDM\nMACRO m2\nENDM",
			MaxMacros: 1,
			Error:     &macro.TooManyMacrosError{},
			Line:      3,
		},
		{
			Name:  "Missing Name",
			Input: "MACRO\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
		{
			Name:  "Reserved Name",
			Input: "MACRO mov\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
		{
			Name:  "Invalid Name",
			Input: "MACRO 1m\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
		{
			Name:  "Redefined",
			Input: "MACRO m1\nENDM\nMACRO m1\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  3,
		},
		{
			Name:  "Duplicate Parameter",
			Input: "MACRO m1 a, a\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
		{
			Name:  "Empty Parameter",
			Input: "MACRO m1 a,,b\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
		{
			Name:  "Too Many Parameters",
			Input: "MACRO m1 a,b,c,d,e,f,g,h,i\nENDM",
			Error: &macro.InvalidMacroError{},
			Line:  1,
		},
	})
}

func TestDefinitions(t *testing.T) {
	p := macro.NewPreprocessor(0)

	remaining, err := p.Scan(readLines(t, "MACRO b x\nPRN %x%\nENDM\nMACRO a\nENDM\nSTOP"))

	if err != nil {
		t.Fatal(err)
	}

	if len(remaining) != 1 || remaining[0].Text != "STOP" {
		t.Fatalf("Unexpected remaining lines: %v", remaining)
	}

	defs := p.Definitions()

	if len(defs) != 2 || defs[0].Name != "b" || defs[1].Name != "a" {
		t.Fatalf("Definition order mismatch: %# v", pretty.Formatter(defs))
	}

	def, ok := p.Lookup("b")

	if !ok || !reflect.DeepEqual(def.Params, []string{"x"}) ||
		!reflect.DeepEqual(def.Body, []string{"PRN %x%"}) {
		t.Fatalf("Definition mismatch: %# v", pretty.Formatter(def))
	}

	if p.MaxMacros != macro.MAX_MACROS {
		t.Fatalf("Default limit mismatch\nwant:%d\nhave:%d", macro.MAX_MACROS, p.MaxMacros)
	}
}
