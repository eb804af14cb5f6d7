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

func nullCycleCallback() error {
	return nil
}

// Step the emulator state one CPU instruction (or one interrupt service
// sequence). we can put this function in a loop for an effective debugging
// loop. the cycleCallback function provides an additional callback point, it
// is called once per CPU cycle as the instruction progresses.
//
// returns the number of cycles consumed by the step.
func (nes *NES) Step(cycleCallback func() error) (int, error) {
	if cycleCallback == nil {
		cycleCallback = nullCycleCallback
	}

	// a jammed CPU consumes no further cycles. LastResult still describes
	// the KIL instruction so must not be counted again
	if nes.CPU.Killed {
		return 0, nil
	}

	err := nes.CPU.ExecuteInstruction(cycleCallback)
	if err != nil {
		return 0, err
	}

	n := nes.CPU.LastResult.Cycles
	nes.totalCycles += uint64(n)

	return n, nil
}
