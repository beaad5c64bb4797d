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

package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/lassandro/qasm/pkg/config"
	"github.com/lassandro/qasm/pkg/output"
)

func TestParse(t *testing.T) {
	input := `
[assembler]
max-macros = 8

[output]
directory = "build"
object-ext = ".obj"

[log]
level = "error"
`

	have, err := config.Parse([]byte(input))

	if err != nil {
		t.Fatal(err)
	}

	want := config.Default()
	want.MaxMacros = 8
	want.OutputDir = "build"
	want.ObjectExt = ".obj"
	want.LogLevel = "error"

	if !reflect.DeepEqual(have, want) {
		t.Fatalf("Config mismatch\n%s", strings.Join(pretty.Diff(want, have), "\n"))
	}
}

func TestParseFail(t *testing.T) {
	tests := map[string]string{
		"Syntax":             "[assembler\n",
		"Zero Macros":        "[assembler]\nmax-macros = 0",
		"Bad Extension":      "[output]\nobject-ext = \"ob\"",
		"Nested Extension":   "[output]\nentries-ext = \"./x\"",
		"Clashing Extension": "[output]\nobject-ext = \".ext\"",
		"Unknown Log Level":  "[log]\nlevel = \"loud\"",
	}

	for name, input := range tests {
		if _, err := config.Parse([]byte(input)); err == nil {
			t.Fatalf("%s: want:error\nhave:<nil>", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadDir(dir)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("Missing file did not give defaults: %# v", pretty.Formatter(cfg))
	}

	path := filepath.Join(dir, config.FileName)

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"silent\"\n"), 0666); err != nil {
		t.Fatal(err)
	}

	if cfg, err = config.LoadDir(dir); err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "silent" {
		t.Fatalf("Log level mismatch\nwant:silent\nhave:%s", cfg.LogLevel)
	}
}

func TestPaths(t *testing.T) {
	cfg := config.Default()

	want := output.Paths{
		Object:    filepath.Join("src", "prog.ob"),
		Entries:   filepath.Join("src", "prog.ent"),
		Externals: filepath.Join("src", "prog.ext"),
		Expanded:  filepath.Join("src", "prog.am"),
		Debug:     filepath.Join("src", "prog.dbg"),
	}

	if have := cfg.Paths(filepath.Join("src", "prog.as")); !reflect.DeepEqual(have, want) {
		t.Fatalf("Path mismatch\n%s", strings.Join(pretty.Diff(want, have), "\n"))
	}

	cfg.OutputDir = "out"

	if have := cfg.Paths(filepath.Join("src", "prog.as")).Object; have != filepath.Join("out", "prog.ob") {
		t.Fatalf("Output directory ignored: %s", have)
	}
}
