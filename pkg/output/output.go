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

// Package output renders an assembled program into its text streams. All
// addresses and words are written as 8-digit base-4 numbers.
package output

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/lassandro/qasm/pkg/assembler"
	"github.com/lassandro/qasm/pkg/encoding"
	"github.com/lassandro/qasm/pkg/isa"
	"github.com/lassandro/qasm/pkg/source"
)

// Paths of the files produced for one source file. Empty paths are skipped.
type Paths struct {
	Object    string
	Entries   string
	Externals string
	Expanded  string
	Debug     string
}

// Object stream
// ---- IC DC
// ---- address word
func WriteObject(w io.Writer, program *assembler.Program) error {
	if _, err := fmt.Fprintf(
		w, "%d %d\n", len(program.Instructions), len(program.Data),
	); err != nil {
		return err
	}

	for i, word := range program.Image() {
		if _, err := fmt.Fprintf(
			w,
			"%s %s\n",
			encoding.EncodeBase4(uint16(isa.BASE_ADDRESS+i)),
			encoding.EncodeBase4(word),
		); err != nil {
			return err
		}
	}

	return nil
}

// Entries stream
// ---- name address
func WriteEntries(w io.Writer, program *assembler.Program) error {
	for _, symbol := range program.Symbols.Entries() {
		if _, err := fmt.Fprintf(
			w, "%s %s\n", symbol.Name, encoding.EncodeBase4(symbol.Address),
		); err != nil {
			return err
		}
	}

	return nil
}

// Externals stream
// ---- name address-of-use
func WriteExternals(w io.Writer, program *assembler.Program) error {
	for _, use := range program.Externals {
		if _, err := fmt.Fprintf(
			w, "%s %s\n", use.Name, encoding.EncodeBase4(use.Address),
		); err != nil {
			return err
		}
	}

	return nil
}

// WriteExpanded writes the source as it looks after macro expansion
func WriteExpanded(w io.Writer, lines []source.Line) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line.Text); err != nil {
			return err
		}
	}

	return nil
}

func WriteDebug(w io.Writer, debug *assembler.DebugTable) error {
	return gob.NewEncoder(w).Encode(debug)
}

func ReadDebug(r io.Reader) (*assembler.DebugTable, error) {
	var debug assembler.DebugTable

	if err := gob.NewDecoder(r).Decode(&debug); err != nil {
		return nil, err
	}

	return &debug, nil
}

// WriteFiles writes the object file and, when they have content, the
// entries and externals files. An empty stream removes any file left at its
// path by an earlier run.
func WriteFiles(program *assembler.Program, paths Paths) error {
	if err := writeFile(paths.Object, func(w io.Writer) error {
		return WriteObject(w, program)
	}); err != nil {
		return err
	}

	var err error

	if len(program.Symbols.Entries()) > 0 {
		err = writeFile(paths.Entries, func(w io.Writer) error {
			return WriteEntries(w, program)
		})
	} else {
		err = removeFile(paths.Entries)
	}

	if err != nil {
		return err
	}

	if len(program.Externals) > 0 {
		err = writeFile(paths.Externals, func(w io.Writer) error {
			return WriteExternals(w, program)
		})
	} else {
		err = removeFile(paths.Externals)
	}

	return err
}

func WriteExpandedFile(path string, lines []source.Line) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteExpanded(w, lines)
	})
}

func WriteDebugFile(path string, debug *assembler.DebugTable) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteDebug(w, debug)
	})
}

func writeFile(path string, render func(io.Writer) error) error {
	if path == "" {
		return nil
	}

	buffer := new(bytes.Buffer)

	if err := render(buffer); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0666); err != nil {
		return err
	}

	return nil
}

func removeFile(path string) error {
	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
