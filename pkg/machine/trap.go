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

package machine

import (
	"io"
	"time"
)

// waitKey blocks until the keyboard delivers a byte. Keyboard reads are
// non-blocking at the device level, so "blocking" is a retry loop.
func (mc *Machine) waitKey() byte {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return 0
	}

	for {
		key, err := mc.Devices.Keyboard.ReadByte()

		if err == nil {
			return key
		} else if err != io.EOF {
			panic(err)
		}

		time.Sleep(time.Millisecond)
	}
}

func (mc *Machine) putByte(value byte) {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if err := mc.Devices.Display.WriteByte(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) putString(value string) {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if _, err := mc.Devices.Display.WriteString(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) flush() {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return
	}

	if err := mc.Devices.Display.Flush(); err != nil {
		panic(err)
	}
}

// trap services the TRAP instruction. R7 already holds the return address;
// vectors outside the service table fall through as no-ops.
func (mc *Machine) trap(vector uint16) {
	switch vector {

	// Read a single byte into R0, no echo
	case TRAP_GETC:
		mc.State.Registers[0] = uint16(mc.waitKey())

		mc.setFlags(mc.State.Registers[0])

	// Write the low byte of R0
	case TRAP_OUT:
		mc.putByte(byte(mc.State.Registers[0]))
		mc.flush()

	// Write the word string at R0, one byte per word, until a zero word
	case TRAP_PUTS:
		for addr := mc.State.Registers[0]; ; addr++ {
			c := mc.read(addr)

			if c == 0 {
				break
			}

			mc.putByte(byte(c))
		}

		mc.flush()

	// Prompt, read a single byte into R0, echo it
	case TRAP_IN:
		mc.putString("Enter a character: ")
		mc.flush()

		key := mc.waitKey()

		mc.putByte(key)
		mc.flush()

		mc.State.Registers[0] = uint16(key)

		mc.setFlags(mc.State.Registers[0])

	// Write the byte string at R0, low byte then high byte of each word,
	// until a zero word
	case TRAP_PUTSP:
		for addr := mc.State.Registers[0]; ; addr++ {
			c := mc.read(addr)

			if c == 0 {
				break
			}

			mc.putByte(byte(c & 0xFF))

			if c>>8 != 0 {
				mc.putByte(byte(c >> 8))
			}
		}

		mc.flush()

	case TRAP_HALT:
		mc.putString("HALT\n")
		mc.flush()

		mc.Running = false
	}
}
