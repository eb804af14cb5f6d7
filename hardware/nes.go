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

package hardware

import (
	"github.com/krbrs/gopher2a03/hardware/cpu"
	"github.com/krbrs/gopher2a03/hardware/cpu/execution"
	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/hardware/memory/cpubus"
)

// ClockHz is the frequency of the 2A03 CPU clock in an NTSC console. The
// master clock (21.477272MHz) divided by twelve.
const ClockHz = 1789773

// NES struct is the main container for the emulated components of the
// console.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the total number of CPU cycles since the last Reset(), including the
	// seven cycles of the reset sequence itself
	totalCycles uint64
}

// NewNES creates a new NES and everything associated with the hardware.
func NewNES() *NES {
	nes := &NES{}
	nes.Mem = memory.NewMemory()
	nes.CPU = cpu.NewCPU(nes.Mem)
	return nes
}

// AttachPRG loads a program ROM into memory and resets the console. an empty
// data slice ejects the current program.
func (nes *NES) AttachPRG(data []uint8) error {
	err := nes.Mem.AttachPRG(data)
	if err != nil {
		return err
	}
	return nes.Reset()
}

// Reset emulates the reset line on the console. RAM is not cleared by a
// reset, as in the real machine.
func (nes *NES) Reset() error {
	nes.CPU.Reset()

	// the reset sequence occupies the CPU for seven cycles before the first
	// fetch from the reset vector
	nes.totalCycles = execution.InterruptCycles

	return nes.CPU.LoadPCIndirect(cpubus.Reset)
}

// RaiseNMI signals a falling edge on the CPU's NMI pin. The interrupt will be
// serviced at the next instruction boundary.
func (nes *NES) RaiseNMI() {
	nes.CPU.RaiseNMI()
}

// SetIRQLine sets the level of the CPU's IRQ pin. The line is level
// triggered, the caller must release it once the interrupt has been
// acknowledged.
func (nes *NES) SetIRQLine(held bool) {
	nes.CPU.SetIRQLine(held)
}

// TotalCycles returns the number of CPU cycles ticked since the last Reset().
func (nes *NES) TotalCycles() uint64 {
	return nes.totalCycles
}
