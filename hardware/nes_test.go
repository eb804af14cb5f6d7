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

package hardware_test

import (
	"testing"

	"github.com/krbrs/gopher2a03/hardware"
	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/test"
)

// assemble a small PRG image. the program is placed at the start of the
// address space (0x8000) and the RESET vector points at it.
func testPRG(program []uint8) []uint8 {
	prg := make([]uint8, memory.PRGSizeSmall)
	copy(prg, program)

	// 16k images are mirrored so the vectors sit at the top of the bank
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	return prg
}

func TestAttachAndReset(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0xa9, 0xff, // LDA #$ff
		0x8d, 0x00, 0x02, // STA $0200
		0x02, // KIL
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	// reset vector has been followed and the reset sequence accounted for
	test.Equate(t, nes.CPU.PC.Address(), 0x8000)
	test.Equate(t, nes.TotalCycles(), 7)
}

func TestStep(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0xa9, 0xff, // LDA #$ff (2 cycles)
		0x8d, 0x00, 0x02, // STA $0200 (4 cycles)
		0x02, // KIL
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	n, err := nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)
	test.Equate(t, nes.CPU.A.Value(), 0xff)

	n, err = nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 4)

	// 7 reset cycles plus the two instructions
	test.Equate(t, nes.TotalCycles(), 7+6)

	v, err := nes.Mem.Peek(0x0200)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xff)
}

func TestStepCycleCallback(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0x8d, 0x00, 0x02, // STA $0200 (4 cycles)
		0x02, // KIL
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	cycles := 0
	n, err := nes.Step(func() error {
		cycles++
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, cycles)
}

func TestRun(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0xe8,             // INX
		0x4c, 0x00, 0x80, // JMP $8000
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	instructions := 0
	err = nes.Run(func() (bool, error) {
		instructions++
		return instructions < 10, nil
	})
	test.ExpectedSuccess(t, err)

	// five INX/JMP pairs after the reset sequence
	test.Equate(t, nes.CPU.X.Value(), 5)
	test.Equate(t, nes.TotalCycles(), uint64(7+5*2+5*3))
}

func TestStoreToROMCompletesStep(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0xa9, 0xff, // LDA #$ff (2 cycles)
		0x8d, 0x05, 0x80, // STA $8005 (4 cycles)
		0xe8, // INX
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	_, err = nes.Step(nil) // LDA #$ff
	test.ExpectedSuccess(t, err)

	// the store is discarded by the ROM but the instruction completes and
	// the bus error is noted in the result
	n, err := nes.Step(nil) // STA $8005
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 4)
	if nes.CPU.LastResult.Error == "" {
		t.Errorf("expected result to note the discarded ROM write")
	}

	// the ROM is unchanged and the machine is not wedged
	v, err := nes.Mem.Peek(0x8005)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xe8)

	_, err = nes.Step(nil) // INX
	test.ExpectedSuccess(t, err)
	test.Equate(t, nes.CPU.X.Value(), 1)
}

func TestStepAfterKill(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0x02, // KIL
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	n, err := nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)
	test.Equate(t, nes.CPU.Killed, true)

	// a jammed CPU consumes no further cycles
	n, err = nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 0)
	test.Equate(t, nes.TotalCycles(), 7+2)
}

func TestSnapshotPlumb(t *testing.T) {
	nes := hardware.NewNES()

	prg := testPRG([]uint8{
		0xe8, // INX
		0xe8, // INX
		0x02, // KIL
	})

	err := nes.AttachPRG(prg)
	test.ExpectedSuccess(t, err)

	_, err = nes.Step(nil)
	test.ExpectedSuccess(t, err)
	state := nes.Snapshot()

	_, err = nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, nes.CPU.X.Value(), 2)

	nes.Plumb(state)
	test.Equate(t, nes.CPU.X.Value(), 1)

	// emulation continues correctly from the restored state
	_, err = nes.Step(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, nes.CPU.X.Value(), 2)
}
