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

package memory

import (
	"errors"
	"fmt"

	"github.com/krbrs/gopher2a03/hardware/memory/cpubus"
)

// RAMSize is the amount of work RAM fitted in the console. The RAM appears
// four times in the address space, mirrored every 0x0800 bytes below 0x2000.
const RAMSize = 2048

// PRG ROM sizes accepted by AttachPRG. A 16KiB program appears twice in the
// address space, at 0x8000 and again at 0xc000.
const (
	PRGSizeSmall = 16384
	PRGSizeLarge = 32768
)

const (
	ramTop  = uint16(0x1fff)
	prgBase = uint16(0x8000)
)

// sentinel errors for the memory package.
var (
	ErrPRGSize = errors.New("PRG data must be 16KiB or 32KiB")
	ErrNoPRG   = errors.New("no PRG attached")

	// ErrReadOnly wraps cpubus.ErrUnmappedAddress. the write is discarded,
	// as it is by the NROM board, and the CPU carries on with the
	// instruction
	ErrReadOnly = fmt.Errorf("write to read-only address: %w", cpubus.ErrUnmappedAddress)
)

// Memory is the console memory as seen by the CPU. Only the work RAM and the
// PRG ROM are decoded; accesses to any other area return an error wrapping
// cpubus.ErrUnmappedAddress.
//
// Memory implements the cpubus.Memory and cpubus.DebugBus interfaces.
type Memory struct {
	RAM [RAMSize]uint8

	// prg is nil until AttachPRG is called. the mask folds mirrored
	// addresses into the actual data
	prg     []uint8
	prgMask uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset the contents of the work RAM. The PRG ROM is unaffected.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
}

// AttachPRG copies the supplied program data into the PRG ROM area. The data
// must be exactly 16KiB or 32KiB long.
func (mem *Memory) AttachPRG(data []byte) error {
	if len(data) != PRGSizeSmall && len(data) != PRGSizeLarge {
		return fmt.Errorf("memory: %w (%d bytes)", ErrPRGSize, len(data))
	}
	mem.prg = make([]uint8, len(data))
	copy(mem.prg, data)
	mem.prgMask = uint16(len(data) - 1)
	return nil
}

// Snapshot creates a copy of the memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	if mem.prg != nil {
		n.prg = make([]uint8, len(mem.prg))
		copy(n.prg, mem.prg)
	}
	return &n
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	switch {
	case address <= ramTop:
		return mem.RAM[address&(RAMSize-1)], nil
	case address >= prgBase:
		if mem.prg == nil {
			return 0, fmt.Errorf("memory: %w (%#04x)", ErrNoPRG, address)
		}
		return mem.prg[(address-prgBase)&mem.prgMask], nil
	}
	return 0, fmt.Errorf("memory: %w (%#04x)", cpubus.ErrUnmappedAddress, address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	switch {
	case address <= ramTop:
		mem.RAM[address&(RAMSize-1)] = data
		return nil
	case address >= prgBase:
		return fmt.Errorf("memory: %w (%#04x)", ErrReadOnly, address)
	}
	return fmt.Errorf("memory: %w (%#04x)", cpubus.ErrUnmappedAddress, address)
}

// Peek is an implementation of cpubus.DebugBus. Reads in this implementation
// have no side effects so Peek is equivalent to Read.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

// Poke is an implementation of cpubus.DebugBus. Unlike Write, Poke can alter
// the PRG ROM.
func (mem *Memory) Poke(address uint16, data uint8) error {
	switch {
	case address <= ramTop:
		mem.RAM[address&(RAMSize-1)] = data
		return nil
	case address >= prgBase:
		if mem.prg == nil {
			return fmt.Errorf("memory: %w (%#04x)", ErrNoPRG, address)
		}
		mem.prg[(address-prgBase)&mem.prgMask] = data
		return nil
	}
	return fmt.Errorf("memory: %w (%#04x)", cpubus.ErrUnmappedAddress, address)
}
