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

// Package disassembly represents the program in a structured manner.
//
// The FromMemory() function disassembles a program ROM image in two passes.
// The first pass decodes every address in the program area as though it were
// the start point of an instruction. The second pass walks the program from
// the RESET vector (and from every jump and branch target found during the
// first pass) and blesses those entries it can reach. Blessed entries are
// those we are reasonably sure are real instructions, decoded entries may
// simply be data that happens to decode.
//
// Because decoding uses the CPU itself (with the NoFlowControl flag raised)
// the disassembly is guaranteed to agree with the execution engine about
// byte counts and addressing modes. Self modifying code is of course
// invisible to any static disassembly.
package disassembly
