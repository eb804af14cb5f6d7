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

package execution

import (
	"github.com/krbrs/gopher2a03/hardware/cpu/instructions"
)

// Result records the state of an instruction execution on the CPU. It is
// updated cycle by cycle as the instruction proceeds; Final is true once the
// instruction has completed.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. a Defn of nil with a
	// non-empty Interrupt field indicates an interrupt service sequence
	// rather than an instruction
	Defn *instructions.Definition

	// the data that follows the opcode. for instructions shorter than three
	// bytes not all of this is meaningful
	InstructionData uint16

	// the actual number of cycles taken by the instruction. this can differ
	// from Defn.Cycles because of page faults and taken branches
	Cycles int

	// the number of bytes read during instruction decode. the BRK
	// instruction reads a padding byte that is not counted
	ByteCount int

	// whether a page fault occurred during execution and cost an extra cycle
	PageFault bool

	// whether the branch test succeeded (branch instructions only)
	BranchSuccess bool

	// a description of any hardware quirk triggered by the instruction
	CPUBug string

	// non-empty if this result describes an interrupt service sequence
	// rather than an instruction. one of "NMI", "IRQ" or "RESET"
	Interrupt string

	// a memory access error that occurred mid-instruction. execution
	// continues when this happens so that the CPU is left in a consistent
	// state, but the result should be treated with suspicion
	Error string

	// whether this is the result of a completed instruction
	Final bool
}

// Reset prepares the Result for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.Cycles = 0
	r.ByteCount = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = ""
	r.Interrupt = ""
	r.Error = ""
	r.Final = false
}
