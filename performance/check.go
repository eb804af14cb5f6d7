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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/krbrs/gopher2a03/hardware"
)

// sentinal error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied program ROM
// image.
//
// Emulation will run for the specified duration and will create a cpu
// and/or memory profile as defined by the Profile argument. The measured
// speed of the emulation, and how it compares to the real machine, is
// written to output.
func Check(output io.Writer, profile Profile, prg []uint8, duration string) error {
	nes := hardware.NewNES()
	err := nes.AttachPRG(prg)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		// only check for the end of the measurement period every
		// PerformanceBrake CPU instructions. checking the channel is
		// relatively expensive
		performanceBrake := 0

		return nes.Run(func() (bool, error) {
			if nes.CPU.Killed {
				return false, nil
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return false, timedOut
				default:
				}
			}
			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	hz, accuracy := CalcSpeed(nes.TotalCycles(), dur.Seconds())
	_, err = io.WriteString(output,
		fmt.Sprintf("%.0f cycles/sec (%d cycles in %.2f seconds) %.1f%%\n",
			hz, nes.TotalCycles(), dur.Seconds(), accuracy))

	return err
}
