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

package memory_test

import (
	"errors"
	"testing"

	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/hardware/memory/cpubus"
	"github.com/krbrs/gopher2a03/test"
)

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedSuccess(t, mem.Write(0x0000, 0xab))

	// the same cell appears at every 0x0800 interval below 0x2000
	for _, a := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		v, err := mem.Read(a)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, 0xab)
	}

	// writing through a mirror reaches the same cell
	test.ExpectedSuccess(t, mem.Write(0x1801, 0xcd))
	v, err := mem.Read(0x0001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xcd)
}

func TestPRGMirroring(t *testing.T) {
	mem := memory.NewMemory()

	prg := make([]byte, memory.PRGSizeSmall)
	prg[0] = 0x11
	prg[memory.PRGSizeSmall-2] = 0x34
	prg[memory.PRGSizeSmall-1] = 0x12
	test.ExpectedSuccess(t, mem.AttachPRG(prg))

	// a small program appears at 0x8000 and again at 0xc000
	v, err := mem.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x11)
	v, err = mem.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x11)

	// the vectors at the top of the address space land on the last bytes
	// of the program
	v, err = mem.Read(cpubus.Reset)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x34)
	v, err = mem.Read(cpubus.Reset + 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x12)
}

func TestPRGSizes(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedFailure(t, mem.AttachPRG(make([]byte, 1000)))
	test.ExpectedSuccess(t, mem.AttachPRG(make([]byte, memory.PRGSizeLarge)))

	// a large program is not mirrored
	test.ExpectedSuccess(t, mem.Poke(0x8000, 0x56))
	v, err := mem.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, err = mem.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x56)
}

func TestUnmappedAndReadOnly(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectedSuccess(t, mem.AttachPRG(make([]byte, memory.PRGSizeSmall)))

	_, err := mem.Read(0x4000)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, cpubus.ErrUnmappedAddress) {
		t.Errorf("expected unmapped address error (got %v)", err)
	}

	err = mem.Write(0x8000, 0x01)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, memory.ErrReadOnly) {
		t.Errorf("expected read-only error (got %v)", err)
	}

	// a ROM write is a bus error, not a fatal one. the CPU checks for the
	// unmapped address sentinel to decide whether to carry on
	if !errors.Is(err, cpubus.ErrUnmappedAddress) {
		t.Errorf("read-only error should wrap the unmapped address sentinel (got %v)", err)
	}

	// and the write itself is discarded
	v, err := mem.Peek(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)

	// but Poke can patch the ROM
	test.ExpectedSuccess(t, mem.Poke(0x8000, 0x01))
	v, err = mem.Peek(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x01)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectedSuccess(t, mem.Write(0x0010, 0x99))

	snap := mem.Snapshot()
	test.ExpectedSuccess(t, mem.Write(0x0010, 0x00))

	v, err := snap.Read(0x0010)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x99)
}
