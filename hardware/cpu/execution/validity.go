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

import "fmt"

// InterruptCycles is the number of cycles consumed by an interrupt service
// sequence (two internal cycles, three stack pushes, two vector reads).
const InterruptCycles = 7

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// interrupt service sequences have no definition to check against
	if r.Interrupt != "" {
		if r.Defn != nil {
			return fmt.Errorf("cpu: interrupt service (%s) should not have an instruction definition", r.Interrupt)
		}
		if r.ByteCount != 0 {
			return fmt.Errorf("cpu: interrupt service (%s) should not consume program bytes (read %d)", r.Interrupt, r.ByteCount)
		}
		if r.Cycles != InterruptCycles {
			return fmt.Errorf("cpu: number of cycles wrong for interrupt service (%s) (%d instead of %d)", r.Interrupt, r.Cycles, InterruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// if a bug has been triggered, don't perform the number of cycles check
	if r.CPUBug == "" {
		if r.Defn.IsBranch() {
			if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
				return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
					r.Defn.OpCode,
					r.Defn.Operator,
					r.Cycles,
					r.Defn.Cycles,
					r.Defn.Cycles+1,
					r.Defn.Cycles+2)
			}
		} else {
			if r.Defn.PageSensitive {
				if r.PageFault && r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 {
					return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d)",
						r.Defn.OpCode,
						r.Defn.Operator,
						r.Cycles,
						r.Defn.Cycles,
						r.Defn.Cycles+1)
				}
			} else {
				if r.Cycles != r.Defn.Cycles {
					return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
						r.Defn.OpCode,
						r.Defn.Operator,
						r.Cycles,
						r.Defn.Cycles)
				}
			}
		}
	}

	return nil
}
