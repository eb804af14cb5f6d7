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

package performance_test

import (
	"strings"
	"testing"

	"github.com/krbrs/gopher2a03/hardware"
	"github.com/krbrs/gopher2a03/hardware/memory"
	"github.com/krbrs/gopher2a03/performance"
	"github.com/krbrs/gopher2a03/test"
)

func TestCalcSpeed(t *testing.T) {
	hz, accuracy := performance.CalcSpeed(uint64(hardware.ClockHz), 1.0)
	test.Equate(t, int(hz), hardware.ClockHz)
	test.Equate(t, int(accuracy), 100)

	hz, _ = performance.CalcSpeed(uint64(hardware.ClockHz)*2, 1.0)
	test.Equate(t, int(hz), hardware.ClockHz*2)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU, true)

	_, err = performance.ParseProfileString("nosuchprofile")
	test.ExpectedFailure(t, err)
}

func TestCheck(t *testing.T) {
	// a program that spins forever
	prg := make([]uint8, memory.PRGSizeSmall)
	copy(prg, []uint8{
		0xe8,             // INX
		0x4c, 0x00, 0x80, // JMP $8000
	})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	output := &strings.Builder{}
	err := performance.Check(output, performance.ProfileNone, prg, "100ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(output.String(), "cycles/sec") {
		t.Errorf("unexpected performance output: %s", output.String())
	}
}
