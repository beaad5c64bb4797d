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

package encoding

import (
	"errors"
	"strconv"
)

const base4Digits = "0123"

// Number of base-4 digits needed for a 16-bit word
const Base4Width = 8

// Decodes a signed base-10 string in the formats: 123, -123, +123
func DecodeInt(s string) (int16, error) {
	result, err := strconv.ParseInt(s, 10, 16)

	if err != nil {
		return 0, err
	}

	return int16(result), nil
}

// IsRangeError reports whether err came from a literal that parsed but did
// not fit.
func IsRangeError(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

// Encodes a word as 8 base-4 digits, most significant first
func EncodeBase4(value uint16) string {
	var digits [Base4Width]byte

	for i := Base4Width - 1; i >= 0; i-- {
		digits[i] = base4Digits[value&0x3]
		value >>= 2
	}

	return string(digits[:])
}
