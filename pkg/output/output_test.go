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

package output_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/lassandro/qasm/pkg/assembler"
	"github.com/lassandro/qasm/pkg/output"
	"github.com/lassandro/qasm/pkg/source"
)

type testCase struct {
	Name      string
	Input     string
	Object    string
	Entries   string
	Externals string
}

func assemble(t *testing.T, input string, debug *assembler.DebugTable) *assembler.Program {
	lines, err := source.ReadLines(strings.NewReader(input))

	if err != nil {
		t.Fatal(err)
	}

	program, errs := assembler.Assemble(lines, debug)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	return program
}

func render(t *testing.T, write func(io.Writer, *assembler.Program) error, program *assembler.Program) string {
	buffer := new(bytes.Buffer)

	if err := write(buffer, program); err != nil {
		t.Fatal(err)
	}

	return buffer.String()
}

func compare(t *testing.T, stream, want, have string) {
	if want != have {
		t.Fatalf(
			"%s stream mismatch\n%s",
			stream,
			strings.Join(
				pretty.Diff(strings.Split(want, "\n"), strings.Split(have, "\n")),
				"\n",
			),
		)
	}
}

func TestStreams(t *testing.T) {
	tests := []testCase{
		{
			Name:  "Code Only",
			Input: "MAIN: MOV #5,r1\nADD r1,r1\nSTOP\n.entry MAIN",
			Object: "4 0\n" +
				"00001210 00000101\n" +
				"00001211 00000011\n" +
				"00001212 02101101\n" +
				"00001213 33000000\n",
			Entries: "MAIN 00001210\n",
		},
		{
			Name:  "External Use",
			Input: ".extern X\nMOV X,r2",
			Object: "2 0\n" +
				"00001210 00020102\n" +
				"00001211 00000000\n",
			Externals: "X 00001211\n",
		},
		{
			Name:  "Data Follows Code",
			Input: "STOP\nS: .string \"a\"\n.entry S",
			Object: "1 2\n" +
				"00001210 33000000\n" +
				"00001211 00001201\n" +
				"00001212 00000000\n",
			Entries: "S 00001211\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			program := assemble(t, test.Input, nil)

			compare(t, "Object", test.Object, render(t, output.WriteObject, program))
			compare(t, "Entries", test.Entries, render(t, output.WriteEntries, program))
			compare(t, "Externals", test.Externals, render(t, output.WriteExternals, program))
		})
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	paths := output.Paths{
		Object:    filepath.Join(dir, "prog.ob"),
		Entries:   filepath.Join(dir, "prog.ent"),
		Externals: filepath.Join(dir, "prog.ext"),
	}

	program := assemble(t, ".extern X\nJMP X", nil)

	if err := output.WriteFiles(program, paths); err != nil {
		t.Fatal(err)
	}

	object, err := os.ReadFile(paths.Object)

	if err != nil {
		t.Fatal(err)
	}

	compare(t, "Object", "2 0\n00001210 21000020\n00001211 00000000\n", string(object))

	if _, err := os.Stat(paths.Entries); !os.IsNotExist(err) {
		t.Fatalf("Entries file written without entries (%v)", err)
	}

	externals, err := os.ReadFile(paths.Externals)

	if err != nil {
		t.Fatal(err)
	}

	compare(t, "Externals", "X 00001211\n", string(externals))
}

func TestWriteFilesRemovesStale(t *testing.T) {
	dir := t.TempDir()
	paths := output.Paths{
		Object:    filepath.Join(dir, "prog.ob"),
		Entries:   filepath.Join(dir, "prog.ent"),
		Externals: filepath.Join(dir, "prog.ext"),
	}

	first := assemble(t, ".extern X\nMAIN: JMP X\n.entry MAIN", nil)

	if err := output.WriteFiles(first, paths); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{paths.Entries, paths.Externals} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("Missing %s after first run (%v)", path, err)
		}
	}

	second := assemble(t, "STOP", nil)

	if err := output.WriteFiles(second, paths); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{paths.Entries, paths.Externals} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("Stale %s left behind (%v)", path, err)
		}
	}

	object, err := os.ReadFile(paths.Object)

	if err != nil {
		t.Fatal(err)
	}

	compare(t, "Object", "1 0\n00001210 33000000\n", string(object))
}

func TestExpanded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.am")
	lines := []source.Line{{Number: 3, Text: "MOV r1, r2"}, {Number: 3, Text: "STOP"}}

	if err := output.WriteExpandedFile(path, lines); err != nil {
		t.Fatal(err)
	}

	have, err := os.ReadFile(path)

	if err != nil {
		t.Fatal(err)
	}

	compare(t, "Expanded", "MOV r1, r2\nSTOP\n", string(have))
}

func TestDebugRoundTrip(t *testing.T) {
	want := assembler.DebugTable{Source: "/tmp/prog.as"}
	assemble(t, "MAIN: INC r1\nD: .data 1", &want)

	path := filepath.Join(t.TempDir(), "prog.dbg")

	if err := output.WriteDebugFile(path, &want); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)

	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	have, err := output.ReadDebug(file)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(*have, want) {
		t.Fatalf(
			"Debug table mismatch\n%s",
			strings.Join(pretty.Diff(want, *have), "\n"),
		)
	}
}
