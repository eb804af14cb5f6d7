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

package instructions_test

import (
	"testing"

	"github.com/krbrs/gopher2a03/hardware/cpu/instructions"
	"github.com/krbrs/gopher2a03/test"
)

func TestTableIsTotal(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	for op, d := range defs {
		if d == nil {
			t.Fatalf("opcode %#02x has no definition", op)
		}
		test.Equate(t, int(d.OpCode), op)
	}
}

func TestTableConsistency(t *testing.T) {
	defs := instructions.GetDefinitions()

	for _, d := range defs {
		// byte count always follows from the addressing mode
		test.Equate(t, d.Bytes, d.AddressingMode.Bytes())

		// every instruction costs at least the opcode fetch and one
		// further cycle; nothing takes longer than an indexed
		// read-modify-write through a pointer
		if d.Cycles < 2 || d.Cycles > 8 {
			t.Errorf("%s: suspicious cycle count %d", d, d.Cycles)
		}

		switch d.AddressingMode {
		case instructions.Relative:
			// branches are the only users of relative addressing and
			// are always page sensitive
			if d.Effect != instructions.Flow || !d.PageSensitive {
				t.Errorf("%s: relative addressing implies a page sensitive branch", d)
			}
			if !d.IsBranch() {
				t.Errorf("%s: expected IsBranch()", d)
			}
		case instructions.Implied, instructions.Accumulator, instructions.Immediate:
			if d.PageSensitive {
				t.Errorf("%s: page sensitivity requires indexing", d)
			}
		}

		// writes and read-modify-writes always pay for the page
		// crossing so are never page sensitive
		if d.Effect == instructions.Write || d.Effect == instructions.RMW {
			if d.PageSensitive {
				t.Errorf("%s: stores and modifies are not page sensitive", d)
			}
		}
	}
}

func TestTableSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	// the spot checks below use well known opcode values
	brk := defs[0x00]
	test.Equate(t, brk.Operator, instructions.Brk)
	test.Equate(t, brk.Cycles, 7)
	test.Equate(t, brk.Effect, instructions.Interrupt)

	jmpInd := defs[0x6c]
	test.Equate(t, jmpInd.AddressingMode, instructions.Indirect)
	test.Equate(t, jmpInd.Cycles, 5)
	test.Equate(t, jmpInd.Bytes, 3)

	staAbsX := defs[0x9d]
	test.Equate(t, staAbsX.Operator, instructions.Sta)
	test.Equate(t, staAbsX.Cycles, 5)
	test.Equate(t, staAbsX.PageSensitive, false)

	ldaAbsX := defs[0xbd]
	test.Equate(t, ldaAbsX.Cycles, 4)
	test.Equate(t, ldaAbsX.PageSensitive, true)

	incAbsX := defs[0xfe]
	test.Equate(t, incAbsX.Cycles, 7)
	test.Equate(t, incAbsX.Effect, instructions.RMW)

	lax := defs[0xa7]
	test.Equate(t, lax.Operator, instructions.LAX)
	test.Equate(t, lax.Operator.IsUndocumented(), true)

	// 0xeb is the undocumented twin of the official SBC immediate
	test.Equate(t, defs[0xeb].Operator.IsUndocumented(), true)
	test.Equate(t, defs[0xe9].Operator.IsUndocumented(), false)
}
