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
	"fmt"

	"github.com/lassandro/qasm/pkg/isa"
	"github.com/lassandro/qasm/pkg/source"
)

type StatementType uint
type OperandMode uint

// Token is a piece of a source line together with where it was found
type Token struct {
	Position source.Cursor
	Value    string
}

// Statement is the classified form of one source line. Label is nil when the
// line has none; Keyword holds the mnemonic or the directive name and Args
// the unparsed operand text that follows it.
type Statement struct {
	Type        StatementType
	Line        int
	Label       *Token
	Keyword     Token
	Directive   isa.DirectiveType
	Instruction isa.InstructionType
	Args        Token
}

type Symbol struct {
	Name       string
	Address    uint16
	IsData     bool
	IsExternal bool
	IsEntry    bool
	Position   source.Cursor
}

// ExternalUse records one operand word that refers to an external symbol
type ExternalUse struct {
	Name    string
	Address uint16
}

// DebugTable maps emitted instruction addresses back to source lines and
// addresses to the first label defined there.
type DebugTable struct {
	Source string
	Lines  map[uint16]int
	Labels map[uint16]string
}

// IgnoredLabelWarning is reported for a label that stands alone on its line.
// Such a label is not defined.
type IgnoredLabelWarning struct {
	Position source.Cursor
	Received string
}

func (warn *IgnoredLabelWarning) GetPosition() source.Cursor {
	return warn.Position
}

func (warn *IgnoredLabelWarning) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Label '%s' has no statement and is ignored",
		warn.Position.Line,
		warn.Position.Column,
		warn.Received,
	)
}

type InvalidLabelError struct {
	Position source.Cursor
	Received string
}

func (err *InvalidLabelError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidLabelError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *InvalidLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid label '%s'\n\twant:letter followed by up to %d letters, digits or '_'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		isa.MAX_LABEL_LENGTH-1,
	)
}

type ReservedLabelError struct {
	Position source.Cursor
	Received string
}

func (err *ReservedLabelError) GetPosition() source.Cursor {
	return err.Position
}

func (err *ReservedLabelError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *ReservedLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Label '%s' is a reserved word",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MissingDirectiveError struct {
	Position source.Cursor
}

func (err *MissingDirectiveError) GetPosition() source.Cursor {
	return err.Position
}

func (err *MissingDirectiveError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *MissingDirectiveError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Missing directive name after '.'",
		err.Position.Line,
		err.Position.Column,
	)
}

type UnknownDirectiveError struct {
	Position source.Cursor
	Received string
}

func (err *UnknownDirectiveError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownDirectiveError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *UnknownDirectiveError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown directive '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MissingOperandError struct {
	Position source.Cursor
}

func (err *MissingOperandError) GetPosition() source.Cursor {
	return err.Position
}

func (err *MissingOperandError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *MissingOperandError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Missing operand",
		err.Position.Line,
		err.Position.Column,
	)
}

type InvalidStringError struct {
	Position source.Cursor
}

func (err *InvalidStringError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidStringError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *InvalidStringError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid string literal",
		err.Position.Line,
		err.Position.Column,
	)
}

type InvalidMatrixError struct {
	Position source.Cursor
}

func (err *InvalidMatrixError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidMatrixError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *InvalidMatrixError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid matrix dimensions\n\twant:[rows][cols]",
		err.Position.Line,
		err.Position.Column,
	)
}

type InvalidRegisterError struct {
	Position source.Cursor
}

func (err *InvalidRegisterError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidRegisterError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *InvalidRegisterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid register identifier",
		err.Position.Line,
		err.Position.Column,
	)
}

type InvalidLiteralError struct {
	Position source.Cursor
}

func (err *InvalidLiteralError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Kind() source.ErrorKind {
	return source.ERROR_SYNTAX
}

func (err *InvalidLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal",
		err.Position.Line,
		err.Position.Column,
	)
}

type OversizedLiteralError struct {
	Position source.Cursor
	Required interface{}
	Received interface{}
}

func (err *OversizedLiteralError) GetPosition() source.Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *OversizedLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:%v\n\thave:%v",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type InvalidNumArgumentsError struct {
	Position source.Cursor
	Required int
	Received int
}

func (err *InvalidNumArgumentsError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidNumArgumentsError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *InvalidNumArgumentsError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of arguments\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type ExcessInitializerError struct {
	Position source.Cursor
	Required int
	Received int
}

func (err *ExcessInitializerError) GetPosition() source.Cursor {
	return err.Position
}

func (err *ExcessInitializerError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *ExcessInitializerError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Too many matrix values\n\twant:<=%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position source.Cursor
	Received string
}

func (err *RedeclaredLabelError) GetPosition() source.Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownLabelError struct {
	Position source.Cursor
	Received string
}

func (err *UnknownLabelError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownLabelError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *UnknownLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type ExternalEntryError struct {
	Position source.Cursor
	Received string
}

func (err *ExternalEntryError) GetPosition() source.Cursor {
	return err.Position
}

func (err *ExternalEntryError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *ExternalEntryError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Cannot mark external '%s' as entry",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownInstructionError struct {
	Position source.Cursor
	Received string
}

func (err *UnknownInstructionError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownInstructionError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *UnknownInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedBinaryError struct {
	Required int
	Received int
}

func (err *OversizedBinaryError) Kind() source.ErrorKind {
	return source.ERROR_SEMANTIC
}

func (err *OversizedBinaryError) Error() string {
	return fmt.Sprintf(
		"Binary exceeds allowed size\n\twant:<=%d\n\thave:%d",
		err.Required,
		err.Received,
	)
}

// WordCountMismatchError means the encoder emitted a different number of
// words than the first pass reserved. Addresses after it would be wrong, so
// the run stops.
type WordCountMismatchError struct {
	Position source.Cursor
	Required int
	Received int
}

func (err *WordCountMismatchError) GetPosition() source.Cursor {
	return err.Position
}

func (err *WordCountMismatchError) Kind() source.ErrorKind {
	return source.ERROR_CONSISTENCY
}

func (err *WordCountMismatchError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Encoded size differs from reserved size\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type RelocationError struct {
	Step   string
	Reason string
}

func (err *RelocationError) Kind() source.ErrorKind {
	return source.ERROR_CONSISTENCY
}

func (err *RelocationError) Error() string {
	return fmt.Sprintf("Cannot %s: %s", err.Step, err.Reason)
}
