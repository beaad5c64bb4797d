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

package macro

import (
	"fmt"

	"github.com/lassandro/qasm/pkg/source"
)

// Definition is one MACRO ... ENDM block. Body lines are kept verbatim with
// their %param% placeholders.
type Definition struct {
	Name     string
	Params   []string
	Body     []string
	Position source.Cursor
}

type TooManyMacrosError struct {
	Position source.Cursor
	Limit    int
}

func (err *TooManyMacrosError) GetPosition() source.Cursor {
	return err.Position
}

func (err *TooManyMacrosError) Kind() source.ErrorKind {
	return source.ERROR_STRUCTURAL
}

func (err *TooManyMacrosError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Too many macro definitions\n\twant:<=%d",
		err.Position.Line,
		err.Position.Column,
		err.Limit,
	)
}

type InvalidMacroError struct {
	Position source.Cursor
	Reason   string
}

func (err *InvalidMacroError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidMacroError) Kind() source.ErrorKind {
	return source.ERROR_STRUCTURAL
}

func (err *InvalidMacroError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid macro header: %s",
		err.Position.Line,
		err.Position.Column,
		err.Reason,
	)
}

type MissingEndmError struct {
	Position source.Cursor
	Name     string
}

func (err *MissingEndmError) GetPosition() source.Cursor {
	return err.Position
}

func (err *MissingEndmError) Kind() source.ErrorKind {
	return source.ERROR_STRUCTURAL
}

func (err *MissingEndmError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Missing ENDM for macro '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Name,
	)
}
