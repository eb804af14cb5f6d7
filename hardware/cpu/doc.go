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

// Package cpu emulates the 2A03 microprocessor found in the NES. Like all
// 8-bit processors of the era, the 2A03 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The 2A03 core is a 6502 with the decimal mode disconnected. Everything
// else is intact, including the undocumented instructions and the
// well known hardware quirks: the JMP indirect bug, zero page index
// wraparound and the stack page wraparound.
//
// Instances of the CPU type require an implementation of the cpubus.Memory
// interface as the sole argument. The interface defines the memory
// operations required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction()
// function. Its sole argument is a callback function to be called at every
// cycle boundary of the instruction.
//
// Let's assume mem is an implementation of the cpubus.Memory interface
// loaded with a 2A03 program.
//
//	mc := cpu.NewCPU(mem)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. A full console emulation would use the callback to run the other
// chips in the machine for the correct number of their own clock ticks per
// CPU cycle.
//
// Interrupts are raised with the RaiseNMI() and SetIRQLine() functions. The
// lines are polled at the instruction boundary, at the top of
// ExecuteInstruction(). A serviced interrupt consumes the entire call; the
// instruction that would have run is executed by the next call, from the
// interrupt handler onwards.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information. Very useful for debuggers.
//
// The NoFlowControl flag is used by the disassembly package to prevent the
// CPU from honouring "flow control" functions (ie. JMP, BNE, BEQ, etc.). See
// the instructions package for classifications.
package cpu
