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

// Package config loads the optional qasm.toml settings file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/lassandro/qasm/pkg/macro"
	"github.com/lassandro/qasm/pkg/output"
	"github.com/lassandro/qasm/pkg/report"
)

const FileName = "qasm.toml"

type Config struct {
	MaxMacros int

	OutputDir    string
	ObjectExt    string
	EntriesExt   string
	ExternalsExt string
	ExpandedExt  string
	DebugExt     string

	LogLevel string
}

// tomlConfigFile is the settings file as it is encoded in TOML
type tomlConfigFile struct {
	Assembler *tomlAssembler `toml:"assembler"`
	Output    *tomlOutput    `toml:"output"`
	Log       *tomlLog       `toml:"log"`
}

type tomlAssembler struct {
	MaxMacros *int `toml:"max-macros"`
}

type tomlOutput struct {
	Directory    string `toml:"directory,omitempty"`
	ObjectExt    string `toml:"object-ext,omitempty"`
	EntriesExt   string `toml:"entries-ext,omitempty"`
	ExternalsExt string `toml:"externals-ext,omitempty"`
	ExpandedExt  string `toml:"expanded-ext,omitempty"`
	DebugExt     string `toml:"debug-ext,omitempty"`
}

type tomlLog struct {
	Level string `toml:"level,omitempty"`
}

func Default() *Config {
	return &Config{
		MaxMacros:    macro.MAX_MACROS,
		ObjectExt:    ".ob",
		EntriesExt:   ".ent",
		ExternalsExt: ".ext",
		ExpandedExt:  ".am",
		DebugExt:     ".dbg",
		LogLevel:     "verbose",
	}
}

// Load reads the settings file at path. Settings it leaves out keep their
// default values.
func Load(path string) (*Config, error) {
	buff, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return Parse(buff)
}

// LoadDir reads qasm.toml from dir, or returns the defaults when there is
// none.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))

	if os.IsNotExist(err) {
		return Default(), nil
	}

	return cfg, err
}

func Parse(buff []byte) (*Config, error) {
	tcf := &tomlConfigFile{}

	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	cfg := Default()

	if tcf.Assembler != nil && tcf.Assembler.MaxMacros != nil {
		cfg.MaxMacros = *tcf.Assembler.MaxMacros
	}

	if out := tcf.Output; out != nil {
		cfg.OutputDir = out.Directory
		override(&cfg.ObjectExt, out.ObjectExt)
		override(&cfg.EntriesExt, out.EntriesExt)
		override(&cfg.ExternalsExt, out.ExternalsExt)
		override(&cfg.ExpandedExt, out.ExpandedExt)
		override(&cfg.DebugExt, out.DebugExt)
	}

	if tcf.Log != nil {
		override(&cfg.LogLevel, tcf.Log.Level)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// Validate checks that every setting is usable
func (cfg *Config) Validate() error {
	if cfg.MaxMacros < 1 {
		return fmt.Errorf("max-macros must be at least 1, got %d", cfg.MaxMacros)
	}

	extensions := []struct {
		name  string
		value string
	}{
		{"object-ext", cfg.ObjectExt},
		{"entries-ext", cfg.EntriesExt},
		{"externals-ext", cfg.ExternalsExt},
		{"expanded-ext", cfg.ExpandedExt},
		{"debug-ext", cfg.DebugExt},
	}

	seen := make(map[string]string)

	for _, ext := range extensions {
		if len(ext.value) < 2 || ext.value[0] != '.' ||
			strings.ContainsAny(ext.value, `/\`) {
			return fmt.Errorf("%s must look like '.ext', got '%s'", ext.name, ext.value)
		}

		if other, exists := seen[ext.value]; exists {
			return fmt.Errorf("%s and %s are both '%s'", other, ext.name, ext.value)
		}

		seen[ext.value] = ext.name
	}

	if _, err := report.ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// Paths names the output files for the source file at path
func (cfg *Config) Paths(path string) output.Paths {
	dir := cfg.OutputDir

	if dir == "" {
		dir = filepath.Dir(path)
	}

	name := filepath.Base(path)
	base := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name)))

	return output.Paths{
		Object:    base + cfg.ObjectExt,
		Entries:   base + cfg.EntriesExt,
		Externals: base + cfg.ExternalsExt,
		Expanded:  base + cfg.ExpandedExt,
		Debug:     base + cfg.DebugExt,
	}
}
