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
	"github.com/lassandro/qasm/pkg/source"
)

type relocationState uint

const (
	RELOCATION_NONE relocationState = iota
	RELOCATION_DATA
	RELOCATION_ALL
)

// SymbolTable holds the labels of one assembly run. Addresses are relative
// until RelocateData and RelocateAll have both run, in that order.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []*Symbol
	state   relocationState
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

func (table *SymbolTable) Len() int {
	return len(table.order)
}

// Define adds a code or data label. A name that already exists is left as it
// was.
func (table *SymbolTable) Define(name string, address uint16, isData bool, position source.Cursor) error {
	if _, exists := table.symbols[name]; exists {
		return &RedeclaredLabelError{position, name}
	}

	table.insert(&Symbol{
		Name:     name,
		Address:  address,
		IsData:   isData,
		Position: position,
	})

	return nil
}

func (table *SymbolTable) DefineExternal(name string, position source.Cursor) error {
	if _, exists := table.symbols[name]; exists {
		return &RedeclaredLabelError{position, name}
	}

	table.insert(&Symbol{Name: name, IsExternal: true, Position: position})

	return nil
}

func (table *SymbolTable) insert(symbol *Symbol) {
	table.symbols[symbol.Name] = symbol
	table.order = append(table.order, symbol)
}

func (table *SymbolTable) Lookup(name string) (Symbol, bool) {
	if symbol, exists := table.symbols[name]; exists {
		return *symbol, true
	}

	return Symbol{}, false
}

// MarkEntry flags an existing, non-external symbol for export
func (table *SymbolTable) MarkEntry(name string, position source.Cursor) error {
	symbol, exists := table.symbols[name]

	if !exists {
		return &UnknownLabelError{position, name}
	}

	if symbol.IsExternal {
		return &ExternalEntryError{position, name}
	}

	symbol.IsEntry = true

	return nil
}

// RelocateData moves every data symbol past the instruction segment
func (table *SymbolTable) RelocateData(offset uint16) error {
	if table.state != RELOCATION_NONE {
		return &RelocationError{"relocate data symbols", "already relocated"}
	}

	for _, symbol := range table.order {
		if symbol.IsData {
			symbol.Address += offset
		}
	}

	table.state = RELOCATION_DATA

	return nil
}

// RelocateAll moves code and data symbols to the load address. Externals
// keep address 0.
func (table *SymbolTable) RelocateAll(base uint16) error {
	switch table.state {
	case RELOCATION_NONE:
		return &RelocationError{"relocate symbols", "data symbols not yet relocated"}
	case RELOCATION_ALL:
		return &RelocationError{"relocate symbols", "already relocated"}
	}

	for _, symbol := range table.order {
		if !symbol.IsExternal {
			symbol.Address += base
		}
	}

	table.state = RELOCATION_ALL

	return nil
}

// Symbols in definition order
func (table *SymbolTable) Symbols() []Symbol {
	var result = make([]Symbol, 0, len(table.order))

	for _, symbol := range table.order {
		result = append(result, *symbol)
	}

	return result
}

// Entries in definition order
func (table *SymbolTable) Entries() []Symbol {
	var result []Symbol

	for _, symbol := range table.order {
		if symbol.IsEntry {
			result = append(result, *symbol)
		}
	}

	return result
}
