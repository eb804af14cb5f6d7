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

// The continueCheck() function only runs at the end of a CPU instruction but
// it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. continueCheck()
// should return false when an external event indicates that the emulation
// should stop.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont && !nes.CPU.Killed {
		err = nes.CPU.ExecuteInstruction(nullCycleCallback)
		if err != nil {
			return err
		}
		nes.totalCycles += uint64(nes.CPU.LastResult.Cycles)

		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
