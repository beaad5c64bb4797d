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

// Package report prints diagnostics and progress for assembly runs. Files
// may be reported from several goroutines; each report is printed whole.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/lassandro/qasm/pkg/assembler"
	"github.com/lassandro/qasm/pkg/source"
)

type LogLevel int

const (
	LOG_SILENT  LogLevel = iota // no output at all
	LOG_ERROR                   // errors and the closing summary
	LOG_WARNING                 // errors, warnings and the closing summary
	LOG_VERBOSE                 // everything, including per-file progress
)

var LogLevelNames = []string{"silent", "error", "warning", "verbose"}

func ParseLogLevel(name string) (LogLevel, error) {
	for level, levelName := range LogLevelNames {
		if name == levelName {
			return LogLevel(level), nil
		}
	}

	return LOG_VERBOSE, fmt.Errorf(
		"unknown log level '%s', want one of %v", name, LogLevelNames,
	)
}

// Reporter counts and prints the diagnostics of every file in a run
type Reporter struct {
	LogLevel LogLevel

	errorCount   int
	warningCount int

	w io.Writer
	m sync.Mutex
}

func NewReporter(w io.Writer, level LogLevel) *Reporter {
	return &Reporter{LogLevel: level, w: w}
}

func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}

func (r *Reporter) WarningCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.warningCount
}

// ReportFile prints the diagnostics of one source file. raw holds the file's
// lines as read, so positions can be shown in context; expanded holds them
// after macro preprocessing and may be nil.
func (r *Reporter) ReportFile(path string, raw, expanded []source.Line, errs, warnings []error) {
	buffer := new(bytes.Buffer)
	expansions := expandedLines(raw, expanded)

	if r.LogLevel >= LOG_ERROR {
		for _, err := range errs {
			displayDiagnostic(buffer, path, raw, expansions, err, true)
		}
	}

	if r.LogLevel >= LOG_WARNING {
		for _, warning := range warnings {
			displayDiagnostic(buffer, path, raw, expansions, warning, false)
		}
	}

	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount += len(errs)
	r.warningCount += len(warnings)
	r.w.Write(buffer.Bytes())
}

// ReportError prints an error that is not tied to a source position
func (r *Reporter) ReportError(tag string, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.LogLevel >= LOG_ERROR {
		displayMessage(r.w, ErrorStyleBG, ErrorColorFG, tag, err.Error())
	}
}

func (r *Reporter) ReportInfo(tag, msg string) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.LogLevel >= LOG_VERBOSE {
		displayMessage(r.w, InfoStyleBG, InfoColorFG, tag, msg)
	}
}

// ReportProgram prints a one-line summary of an assembled file
func (r *Reporter) ReportProgram(path string, program *assembler.Program) {
	r.ReportInfo("Assembled", fmt.Sprintf(
		"%s (%d instruction words, %d data words, ends at %d)",
		path,
		len(program.Instructions),
		len(program.Data),
		program.End(),
	))
}

// ReportSymbols prints the symbol table of an assembled file
func (r *Reporter) ReportSymbols(path string, symbols []assembler.Symbol) error {
	table, err := renderSymbols(symbols)

	if err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	if r.LogLevel >= LOG_VERBOSE {
		displayMessage(r.w, InfoStyleBG, InfoColorFG, "Symbols", path)
		fmt.Fprintln(r.w, table)
	}

	return nil
}

// ReportFinished prints the closing summary and reports whether the whole
// run succeeded.
func (r *Reporter) ReportFinished() bool {
	r.m.Lock()
	defer r.m.Unlock()

	success := r.errorCount == 0

	if r.LogLevel >= LOG_ERROR {
		displayFinished(r.w, success, r.errorCount, r.warningCount)
	}

	return success
}
