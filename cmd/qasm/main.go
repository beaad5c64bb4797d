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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/lassandro/qasm/pkg/assembler"
	"github.com/lassandro/qasm/pkg/config"
	"github.com/lassandro/qasm/pkg/output"
	"github.com/lassandro/qasm/pkg/report"
	"github.com/lassandro/qasm/pkg/source"
)

const SOURCE_EXT = ".as"

type options struct {
	expand  bool
	symbols bool
	debug   bool
}

func qasm() int {
	if !isTerminal(os.Stderr.Fd()) {
		pterm.DisableColor()
	}

	cli := olive.NewCLI("qasm", "qasm assembles source files into base-4 object files", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)
	cli.AddPrimaryArg("path", "a source file or a directory of "+SOURCE_EXT+" files", true)
	cli.AddStringArg("out", "o", "the directory to write output files to", false)
	cli.AddStringArg("config", "c", "the settings file to use instead of ./"+config.FileName, false)
	cli.AddFlag("expand", "e", "write the macro-expanded source of each file")
	cli.AddFlag("symbols", "s", "print the symbol table of each file")
	cli.AddFlag("debug", "d", "write a debug table of each file")

	usage := report.NewReporter(os.Stderr, report.LOG_ERROR)

	result, err := olive.ParseArgs(cli, os.Args)

	if err != nil {
		usage.ReportError("CLI Usage Error", err)
		return 1
	}

	var cfg *config.Config

	if path, ok := result.Arguments["config"]; ok {
		cfg, err = config.Load(path.(string))
	} else {
		cfg, err = config.LoadDir(".")
	}

	if err != nil {
		usage.ReportError("Config Error", err)
		return 1
	}

	if level, ok := result.Arguments["loglevel"]; ok {
		cfg.LogLevel = level.(string)
	}

	if dir, ok := result.Arguments["out"]; ok {
		cfg.OutputDir = dir.(string)
	}

	level, err := report.ParseLogLevel(cfg.LogLevel)

	if err != nil {
		usage.ReportError("Config Error", err)
		return 1
	}

	reporter := report.NewReporter(os.Stderr, level)

	opts := options{
		expand:  result.HasFlag("expand"),
		symbols: result.HasFlag("symbols"),
		debug:   result.HasFlag("debug"),
	}

	path, _ := result.PrimaryArg()
	files, err := sourceFiles(path)

	if err != nil {
		reporter.ReportError("Path Error", err)
		reporter.ReportFinished()
		return 1
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0777); err != nil {
			reporter.ReportError("Path Error", err)
			reporter.ReportFinished()
			return 1
		}
	}

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for _, file := range files {
		file := file

		group.Go(func() error {
			if err := assembleFile(file, cfg, opts, reporter); err != nil {
				reporter.ReportError("IO Error", err)
			}

			return nil
		})
	}

	group.Wait()

	if !reporter.ReportFinished() {
		return 1
	}

	return 0
}

// sourceFiles lists path itself, or every source file directly inside it
func sourceFiles(path string) ([]string, error) {
	stat, err := os.Stat(path)

	if err != nil {
		return nil, err
	}

	if !stat.IsDir() {
		return []string{path}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*"+SOURCE_EXT))

	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files in %s", SOURCE_EXT, path)
	}

	sort.Strings(files)

	return files, nil
}

// assembleFile runs one independent assembly. Diagnostics go to the
// reporter; only I/O failures are returned.
func assembleFile(path string, cfg *config.Config, opts options, reporter *report.Reporter) error {
	buff, err := os.ReadFile(path)

	if err != nil {
		return err
	}

	raw, err := source.ReadLines(bytes.NewReader(buff))

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var debug *assembler.DebugTable

	if opts.debug {
		debug = &assembler.DebugTable{}

		if debug.Source, err = filepath.Abs(path); err != nil {
			debug.Source = path
		}
	}

	program, expanded, errs := assembler.AssembleSource(
		bytes.NewReader(buff), cfg.MaxMacros, debug,
	)

	var warnings []error

	if program != nil {
		warnings = program.Warnings
	}

	reporter.ReportFile(path, raw, expanded, errs, warnings)

	paths := cfg.Paths(path)

	if opts.expand && expanded != nil {
		if err := output.WriteExpandedFile(paths.Expanded, expanded); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		return nil
	}

	if err := output.WriteFiles(program, paths); err != nil {
		return err
	}

	if debug != nil {
		if err := output.WriteDebugFile(paths.Debug, debug); err != nil {
			return err
		}
	}

	if opts.symbols {
		if err := reporter.ReportSymbols(path, program.Symbols.Symbols()); err != nil {
			return err
		}
	}

	reporter.ReportProgram(path, program)

	return nil
}

func main() {
	os.Exit(qasm())
}
