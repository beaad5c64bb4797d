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

// Package macro implements the textual macro preprocessor. A definition
//
//	MACRO name p1, p2
//	    MOV %p1%, %p2%
//	ENDM
//
// is removed from the source, and every later line whose first token is
// "name" is replaced by the body with the call's comma-separated arguments
// substituted for the placeholders. Expansion is not recursive.
package macro

import (
	"fmt"
	"strings"

	"github.com/lassandro/qasm/pkg/isa"
	"github.com/lassandro/qasm/pkg/source"
)

const MAX_MACROS = 64
const MAX_PARAMS = 8

type Preprocessor struct {
	MaxMacros int

	macros map[string]*Definition
	order  []*Definition
}

func NewPreprocessor(maxMacros int) *Preprocessor {
	if maxMacros <= 0 {
		maxMacros = MAX_MACROS
	}

	return &Preprocessor{
		MaxMacros: maxMacros,
		macros:    make(map[string]*Definition),
	}
}

// Preprocess scans lines for definitions and expands every call. Any error
// is structural: no usable line list exists for the file.
func Preprocess(lines []source.Line, maxMacros int) ([]source.Line, error) {
	p := NewPreprocessor(maxMacros)

	remaining, err := p.Scan(lines)

	if err != nil {
		return nil, err
	}

	return p.Expand(remaining), nil
}

func (p *Preprocessor) Lookup(name string) (*Definition, bool) {
	def, ok := p.macros[name]
	return def, ok
}

// Definitions in the order they appear in the source
func (p *Preprocessor) Definitions() []*Definition {
	return append([]*Definition(nil), p.order...)
}

// Scan records every definition and returns the lines outside of them
func (p *Preprocessor) Scan(lines []source.Line) ([]source.Line, error) {
	var remaining = make([]source.Line, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		keyword, _ := firstField(lines[i].Text)

		if !strings.EqualFold(keyword, isa.KEYWORD_MACRO) {
			remaining = append(remaining, lines[i])
			continue
		}

		position := headerPosition(lines[i])

		if len(p.macros) >= p.MaxMacros {
			return nil, &TooManyMacrosError{position, p.MaxMacros}
		}

		def, err := p.parseHeader(lines[i], position)

		if err != nil {
			return nil, err
		}

		j := i + 1

		for ; j < len(lines); j++ {
			if strings.EqualFold(strings.TrimSpace(lines[j].Text), isa.KEYWORD_ENDM) {
				break
			}

			def.Body = append(def.Body, lines[j].Text)
		}

		if j >= len(lines) {
			return nil, &MissingEndmError{position, def.Name}
		}

		p.macros[def.Name] = def
		p.order = append(p.order, def)

		i = j
	}

	return remaining, nil
}

// Expand replaces each macro call with the substituted body. Lines produced
// by a call keep the call's line number.
func (p *Preprocessor) Expand(lines []source.Line) []source.Line {
	var result = make([]source.Line, 0, len(lines))

	for _, line := range lines {
		name, rest := firstField(line.Text)
		def, ok := p.macros[name]

		if !ok {
			result = append(result, line)
			continue
		}

		var args []string

		if rest = strings.TrimSpace(rest); rest != "" {
			for _, arg := range strings.Split(rest, ",") {
				args = append(args, strings.TrimSpace(arg))
			}
		}

		replacer := def.replacer(args)

		for _, body := range def.Body {
			result = append(
				result,
				source.Line{Number: line.Number, Text: replacer.Replace(body)},
			)
		}
	}

	return result
}

func (def *Definition) replacer(args []string) *strings.Replacer {
	pairs := make([]string, 0, len(def.Params)*2)

	for i, param := range def.Params {
		value := ""

		if i < len(args) {
			value = args[i]
		}

		pairs = append(pairs, "%"+param+"%", value)
	}

	return strings.NewReplacer(pairs...)
}

// MACRO name [param, param, ...]
func (p *Preprocessor) parseHeader(line source.Line, position source.Cursor) (*Definition, error) {
	_, rest := firstField(line.Text)
	name, params := firstField(rest)

	if name == "" {
		return nil, &InvalidMacroError{position, "missing macro name"}
	}

	if !isa.IsIdentifier(name) {
		return nil, &InvalidMacroError{
			position, fmt.Sprintf("invalid macro name '%s'", name),
		}
	}

	if isa.IsReserved(name) {
		return nil, &InvalidMacroError{
			position, fmt.Sprintf("macro name '%s' is a reserved word", name),
		}
	}

	if _, exists := p.macros[name]; exists {
		return nil, &InvalidMacroError{
			position, fmt.Sprintf("macro '%s' is already defined", name),
		}
	}

	def := &Definition{Name: name, Position: position}

	if params = strings.TrimSpace(params); params == "" {
		return def, nil
	}

	for _, param := range strings.Split(params, ",") {
		param = strings.TrimSpace(param)

		if !isa.IsIdentifier(param) {
			return nil, &InvalidMacroError{
				position, fmt.Sprintf("invalid parameter '%s'", param),
			}
		}

		for _, existing := range def.Params {
			if existing == param {
				return nil, &InvalidMacroError{
					position, fmt.Sprintf("duplicate parameter '%s'", param),
				}
			}
		}

		def.Params = append(def.Params, param)
	}

	if len(def.Params) > MAX_PARAMS {
		return nil, &InvalidMacroError{
			position,
			fmt.Sprintf("%d parameters, at most %d allowed", len(def.Params), MAX_PARAMS),
		}
	}

	return def, nil
}

// Splits off the first whitespace-delimited field of s
func firstField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")

	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}

	return s, ""
}

func headerPosition(line source.Line) source.Cursor {
	text := strings.TrimRight(line.Text, " \t")
	trimmed := strings.TrimLeft(text, " \t")

	return source.Cursor{
		Line:   line.Number,
		Column: len(text) - len(trimmed) + 1,
		Size:   len(trimmed),
	}
}
