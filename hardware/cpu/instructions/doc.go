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

// Package instructions defines the instruction set of the 2A03. The
// Definition type gives the static properties of each of the 256 opcodes:
// the operator it performs, the addressing mode, the base cycle count,
// whether indexing can incur a page boundary penalty, and the broad
// category of effect the instruction has (whether it reads memory, writes
// it, modifies it in place, or alters the program flow).
//
// The table returned by GetDefinitions() is total. Opcodes with no
// official meaning decode to their undocumented operation; the handful of
// opcodes with no stable behaviour at all decode to KIL, which the cpu
// package treats as a processor halt.
//
// Definitions are used by the cpu package to drive execution and by the
// disassembly package to print instructions.
package instructions
