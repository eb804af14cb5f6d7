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

//go:build !statsview
// +build !statsview

package statsview

import "io"

// Address of the locally running stats server. Empty when the statsview
// build constraint is not present.
const Address = ""

// Launch is a stub. Build with the statsview constraint for a working
// implementation.
func Launch(output io.Writer) {
	_, _ = output.Write([]byte("statsview not available in this build\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
