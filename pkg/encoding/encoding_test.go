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

package encoding_test

import (
	"testing"

	"github.com/lassandro/qasm/pkg/encoding"
)

func TestEncodeBase4(t *testing.T) {
	tests := []struct {
		Input  uint16
		Output string
	}{
		{0, "00000000"},
		{1, "00000001"},
		{3, "00000003"},
		{4, "00000010"},
		{100, "00001210"},
		{101, "00001211"},
		{0b1111_000_000_000_000, "33000000"},
		{0xFFFF, "33333333"},
	}

	for _, test := range tests {
		if have := encoding.EncodeBase4(test.Input); have != test.Output {
			t.Fatalf(
				"Base-4 mismatch for %d\nwant:%s\nhave:%s",
				test.Input, test.Output, have,
			)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		Input  string
		Output int16
	}{
		{"0", 0},
		{"42", 42},
		{"+7", 7},
		{"-1", -1},
		{"32767", 32767},
		{"-32768", -32768},
	}

	for _, test := range tests {
		have, err := encoding.DecodeInt(test.Input)

		if err != nil {
			t.Fatal(err)
		}

		if have != test.Output {
			t.Fatalf("Decode mismatch for %q\nwant:%d\nhave:%d", test.Input, test.Output, have)
		}
	}

	if _, err := encoding.DecodeInt("32768"); !encoding.IsRangeError(err) {
		t.Fatalf("Expected range error, have:%v", err)
	}

	for _, input := range []string{"", "#5", "0x10", "1.5", "abc"} {
		_, err := encoding.DecodeInt(input)

		if err == nil || encoding.IsRangeError(err) {
			t.Fatalf("Expected syntax error for %q, have:%v", input, err)
		}
	}
}
