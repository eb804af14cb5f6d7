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

package registers_test

import (
	"testing"

	"github.com/krbrs/gopher2a03/hardware/cpu/registers"
	"github.com/krbrs/gopher2a03/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, int(r8.Value()), 0)

	// loading & addition
	r8.Load(127)
	test.Equate(t, int(r8.Value()), 127)
	r8.Add(2, false)
	test.Equate(t, int(r8.Value()), 129)
	test.Equate(t, r8.IsNegative(), true)

	// addition boundary
	r8.Load(255)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r8.IsNegative(), true)
	test.Equate(t, int(r8.Value()), 0x80)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.Equate(t, int(r8.Value()), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, int(r8.Value()), 10)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, int(r8.Value()), 0x01)
	r8.ORA(0x10)
	test.Equate(t, int(r8.Value()), 0x11)
	r8.EOR(0xff)
	test.Equate(t, int(r8.Value()), 0xee)

	// shifts
	r8.Load(0xff)
	carry = r8.ASL()
	test.Equate(t, carry, true)
	test.Equate(t, int(r8.Value()), 0xfe)
	carry = r8.LSR()
	test.Equate(t, carry, false)
	test.Equate(t, int(r8.Value()), 0x7f)

	// rotation - carry fed into vacated bit
	r8.Load(0x80)
	carry = r8.ROL(true)
	test.Equate(t, carry, true)
	test.Equate(t, int(r8.Value()), 0x01)
	carry = r8.ROR(true)
	test.Equate(t, carry, true)
	test.Equate(t, int(r8.Value()), 0x80)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.Equate(t, pc.Address(), 0xfffe)

	// wrap around at the top of the address space
	carry := pc.Add(3)
	test.Equate(t, carry, true)
	test.Equate(t, pc.Address(), 0x0001)

	pc.Load(0x1000)
	test.Equate(t, pc.Address(), 0x1000)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)

	// stack pointer always addresses page one
	test.Equate(t, sp.Address(), 0x01fd)

	// wraps within the stack page. adding 0xff is the same as decrementing
	sp.Load(0x00)
	sp.Add(0xff, false)
	test.Equate(t, sp.Address(), 0x01ff)
	sp.Add(1, false)
	test.Equate(t, sp.Address(), 0x0100)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.Reset()
	test.Equate(t, sr.String(), "sv-bdIzc")
	test.Equate(t, sr.InterruptDisable, true)

	// bit 5 is always set in uint8 context
	test.Equate(t, int(sr.Value()), 0x24)

	// pack/unpack round trip
	sr.Sign = true
	sr.Carry = true
	sr.Zero = true
	v := sr.Value()
	test.Equate(t, int(v), 0xa7)

	sr2 := registers.NewStatusRegister()
	sr2.Load(v)
	test.Equate(t, sr2.String(), sr.String())
}
