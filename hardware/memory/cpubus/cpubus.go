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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU. Every cycle of an instruction that touches memory goes
// through the Memory interface, so implementations see the access pattern of
// the real processor, phantom reads and all.
package cpubus

import "errors"

// Interrupt and reset vectors. The CPU fetches the low byte from the vector
// address and the high byte from the address immediately after.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU makes no distinction between areas of memory; address
// decoding is entirely the implementation's concern.
//
// A Read or Write error does not stop the CPU mid-instruction. The access is
// recorded in the execution result and the instruction runs to completion so
// that the processor is left in a consistent state.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for a memory implementation. Think of
// these functions as "debugging" functions, that is operations outside of
// the normal operation of the machine. Peek and Poke must be free of side
// effects.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// ErrUnmappedAddress is a sentinel error, returned (wrapped) by Memory
// implementations when an address decodes to no device at all.
var ErrUnmappedAddress = errors.New("unmapped address")
