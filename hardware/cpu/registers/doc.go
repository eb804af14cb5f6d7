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

// Package registers implements the register file of the 2A03. The CPU type
// in the cpu package is defined in terms of these types.
//
// The general purpose Register type represents the accumulator and the two
// index registers. The StackPointer is a Register fixed to page one of the
// address space and the ProgramCounter is a 16 bit version of the general
// purpose register.
//
// The StatusRegister is a special case. Unlike real hardware the flags are
// stored as individual booleans. The bit pattern of the hardware register
// only matters when the register is transferred to or from the stack, at
// which point Value() and Load() perform the packing. The two phantom bits
// of the hardware byte are handled accordingly: bit 5 is always set by
// Value() while bit 4, which on the stack records whether the push was
// caused by an instruction or by an interrupt, is the responsibility of the
// push site in the cpu package.
package registers
