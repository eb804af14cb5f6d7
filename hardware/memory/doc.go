// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the console memory map as seen by the CPU: 2KiB
// of work RAM mirrored every 0x0800 bytes below 0x2000, and the PRG ROM from
// 0x8000 upwards. A 16KiB program is mirrored into both halves of the ROM
// area, which is how the interrupt vectors at the very top of the address
// space find their way to the end of a small program.
//
// The address ranges belonging to other devices in the console are not
// decoded. Reading or writing them returns an error wrapping
// cpubus.ErrUnmappedAddress, which the CPU records in the execution result
// rather than acting on.
package memory
