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
	"strings"

	"github.com/krbrs/gopher2a03/hardware"
)

// Profile is used to specify the type of profile to be generated.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString returns the Profile value for the named profile type.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, fmt.Errorf("unknown profile type (%s)", s)
}

// CalcSpeed takes the number of cycles ticked and duration (in seconds) and
// returns the effective clock speed in Hz and the accuracy of that value as
// a percentage of the speed of the real machine.
func CalcSpeed(cycles uint64, duration float64) (hz float64, accuracy float64) {
	hz = float64(cycles) / duration
	accuracy = 100 * hz / float64(hardware.ClockHz)
	return hz, accuracy
}
