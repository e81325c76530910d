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

package machine_test

import (
	"testing"
)

// TRAP |1111    |0000   |trapvect8       | System call
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestTrap(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:     "GETC",
			Keyboard: "A",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF020,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					0: 0x0041,
					7: 0x3001,
				},
			},
		},
		{
			Name:     "GETC Zero Byte",
			Keyboard: "\x00",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xCAFE,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF020,
				},
			},
			Output: testMachineState{
				// The byte is unsigned, only ZRO or POS can result
				Program:   0x3001,
				Condition: 0b010,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
		{
			Name:    "OUT",
			Display: "H",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x0048,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF021,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x0048,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "OUT Low Byte Only",
			Display: "!",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0xFF21,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF021,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0xFF21,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "PUTS",
			Display: "Hi",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x4000,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF022,
					0x4000: 0x0048,
					0x4001: 0x0069,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x4000,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "PUTS Empty String",
			Display: "",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x4000,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF022,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x4000,
					7: 0x3001,
				},
			},
		},
		{
			Name:     "IN",
			Keyboard: "y",
			Display:  "Enter a character: y",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0xF023,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: 0b001,
				Registers: [8]uint16{
					0: 0x0079,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "PUTSP Packed Bytes",
			Display: "Hiya",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x4000,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF024,
					// Low byte first, then high byte
					0x4000: 0x6948, // "Hi"
					0x4001: 0x6179, // "ya"
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x4000,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "PUTSP Odd Length",
			Display: "Hi!",
			Input: testMachineState{
				Program: 0x3000,
				Registers: [8]uint16{
					0: 0x4000,
				},
				Memory: map[uint16]uint16{
					0x3000: 0xF024,
					0x4000: 0x6948, // "Hi"
					0x4001: 0x0021, // "!", zero high byte skipped
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					0: 0x4000,
					7: 0x3001,
				},
			},
		},
		{
			Name:    "HALT",
			Display: "HALT\n",
			Halted:  true,
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[uint16]uint16{
					0x3000: 0xF025,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
		{
			Name: "Unknown Vector Is A No-Op",
			Input: testMachineState{
				Program:   0x3000,
				Condition: 0b100,
				Memory: map[uint16]uint16{
					0x3000: 0xF0FF,
				},
			},
			Output: testMachineState{
				// R7 is still saved before the vector lookup
				Program:   0x3001,
				Condition: 0b100,
				Registers: [8]uint16{
					7: 0x3001,
				},
			},
		},
	})
}
