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
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// RunProfiler runs the supplied function and generates the requested
// profiles. Profile files are named after the supplied tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	err := cpuProfile(profile == ProfileCPU || profile == ProfileAll, fmt.Sprintf("%s_cpu.profile", tag), run)
	if err != nil {
		return err
	}
	return memProfile(profile == ProfileMem || profile == ProfileAll, fmt.Sprintf("%s_mem.profile", tag))
}

func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(profile bool, outFile string) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
	}

	return nil
}
