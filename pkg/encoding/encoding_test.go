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

	"github.com/Featherball1/lc3vm/pkg/encoding"
)

func TestSignExtend(t *testing.T) {
	tests := []struct {
		Name     string
		Value    uint16
		Bitcount uint16
		Want     uint16
	}{
		{"imm5 Positive", 0b01111, 5, 0x000F},
		{"imm5 Negative One", 0b11111, 5, 0xFFFF},
		{"imm5 Most Negative", 0b10000, 5, 0xFFF0},
		{"offset6 Negative", 0b111110, 6, 0xFFFE},
		{"PCoffset9 Positive", 0x00FF, 9, 0x00FF},
		{"PCoffset9 Negative", 0x01FF, 9, 0xFFFF},
		{"PCoffset11 Negative", 0x07FE, 11, 0xFFFE},
		{"Zero", 0, 9, 0},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have := encoding.SignExtend(test.Value, test.Bitcount)

			if have != test.Want {
				t.Errorf(
					"Sign extension mismatch\nwant:%#04x\nhave:%#04x",
					test.Want,
					have,
				)
			}
		})
	}
}

// Sign extension of an n-bit value must equal the two's-complement
// interpretation of that value for every representable input.
func TestSignExtendMatchesTwosComplement(t *testing.T) {
	for _, bits := range []uint16{5, 6, 9, 11} {
		for value := uint16(0); value < 1<<bits; value++ {
			shift := 16 - bits
			want := uint16(int16(value<<shift) >> shift)

			if have := encoding.SignExtend(value, bits); have != want {
				t.Fatalf(
					"Sign extension mismatch for %d-bit %#04x"+
						"\nwant:%#04x\nhave:%#04x",
					bits,
					value,
					want,
					have,
				)
			}
		}
	}
}
