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
	"encoding/binary"
	"io"
)

// LoadImage reads an object image: a big-endian origin word followed by
// big-endian program words, stored from mem[origin] onward. Loading stops at
// the end of the stream or at the top of memory, whichever comes first; a
// trailing odd byte is discarded. Memory outside the image is left untouched,
// so images may overlay each other.
func (mc *Machine) LoadImage(reader io.Reader) error {
	scratch := make([]byte, 2)

	if _, err := io.ReadFull(reader, scratch); err != nil {
		return err
	}

	origin := binary.BigEndian.Uint16(scratch)

	// 32-bit cap so an origin of zero loads a full memory image
	max := uint32(1<<16) - uint32(origin)

	for count := uint32(0); count < max; count++ {
		_, err := io.ReadFull(reader, scratch)

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		} else if err != nil {
			return err
		}

		mc.State.Memory[origin+uint16(count)] = binary.BigEndian.Uint16(scratch)
	}

	return nil
}
