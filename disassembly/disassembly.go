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

package disassembly

import (
	"sync"

	"github.com/krbrs/gopher2a03/hardware/cpu"
	"github.com/krbrs/gopher2a03/hardware/cpu/instructions"
	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/hardware/memory/cpubus"
)

// the program ROM occupies the top half of the address space
const (
	origin   = uint16(0x8000)
	memtop   = uint16(0xffff)
	prgBits  = uint16(0x7fff)
	prgSpace = 0x8000
)

// Disassembly represents the program in all its addresses.
type Disassembly struct {
	// critical sectioning. the iteration functions in particular may be
	// called from a different goroutine to the one that created the
	// disassembly
	crit sync.Mutex

	// indexed by address minus origin
	entries [prgSpace]*Entry
}

// FromMemory disassembles a program ROM image. Every address in the program
// area is decoded as though it is the start point of an instruction, the
// decoded entries reachable from the RESET vector are then blessed.
func FromMemory(prg []uint8) (*Disassembly, error) {
	dsm := &Disassembly{}

	mem := memory.NewMemory()
	err := mem.AttachPRG(prg)
	if err != nil {
		return nil, err
	}

	// create a new CPU for the disassembly and make sure flow control
	// instructions do not change the state of the machine
	mc := cpu.NewCPU(mem)
	mc.NoFlowControl = true

	err = dsm.decode(mc)
	if err != nil {
		return nil, err
	}

	err = dsm.bless(mc)
	if err != nil {
		return nil, err
	}

	return dsm, nil
}

// GetEntryByAddress returns the disassembly entry at the specified address.
// Returns nil if the address is not in the program area.
func (dsm *Disassembly) GetEntryByAddress(address uint16) *Entry {
	if address < origin {
		return nil
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	return dsm.entries[address&prgBits]
}

func (dsm *Disassembly) decode(mc *cpu.CPU) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	// the memtop clause alone is always true for uint16 addresses, the
	// additional clause detects the overflow condition
	for address := origin; address <= memtop && address >= origin; address++ {
		mc.PC.Load(address)

		err := mc.ExecuteInstruction(cpu.NilCycleCallback)
		if err != nil {
			return err
		}

		// check validity of the execution before storing. the total
		// instruction table means decoding succeeds at every address but
		// we check anyway in case the table changes in the future
		if mc.LastResult.IsValid() != nil {
			continue
		}

		e := FormatResult(mc.LastResult)
		dsm.entries[address&prgBits] = &e
	}

	return nil
}

func (dsm *Disassembly) bless(mc *cpu.CPU) error {
	// start points for the blessing traversal. the reset address first
	err := mc.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return err
	}

	blessings := make([]uint16, 0)

	if mc.PC.Address() >= origin {
		blessings = append(blessings, mc.PC.Address()&prgBits)
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	// collate a list of blessings from the decoded entries
	for _, e := range dsm.entries {
		if e == nil || e.Result.Defn == nil {
			continue
		}

		// if instruction is a JMP or JSR then take the jump address to be
		// a blessing and add it to the list. the target of an indirect
		// jump is unknowable at disassembly time
		if (e.Result.Defn.Operator == instructions.Jmp && e.Result.Defn.AddressingMode == instructions.Absolute) ||
			e.Result.Defn.Operator == instructions.Jsr {
			if e.Result.InstructionData >= origin {
				blessings = append(blessings, e.Result.InstructionData&prgBits)
			}
		}

		// if instruction is a branch then add the address of the
		// successful branch to the blessing list
		if e.Result.Defn.IsBranch() {
			target := e.Result.Address + uint16(e.Result.Defn.Bytes)
			offset := e.Result.InstructionData
			if offset&0x0080 == 0x0080 {
				offset |= 0xff00
			}
			target += offset

			if target >= origin {
				blessings = append(blessings, target&prgBits)
			}
		}
	}

	// linear traversal from each blessing point. we only bless instructions
	// that naturally follow on from the previous instruction and we stop
	// when a significant flow control event occurs
	for _, a := range blessings {
		for {
			e := dsm.entries[a]
			if e == nil || e.Level == EntryLevelBlessed {
				break
			}

			e.Level = EntryLevelBlessed

			// not breaking on JSR because the sequence will continue if the
			// jumped-to sequence has an RTS (which it probably will have)
			op := e.Result.Defn.Operator
			if op == instructions.Jmp || op == instructions.Rts ||
				op == instructions.Rti || op == instructions.Brk ||
				op == instructions.KIL {
				break
			}

			n := a + uint16(e.Result.ByteCount)

			// break if address has run off the top of the program area
			if n > prgBits {
				break
			}
			a = n
		}
	}

	return nil
}
