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

package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/krbrs/gopher2a03/debugger/terminal"
)

// viz writes a graphviz (dot format) visualisation of the console hardware
// to the named file. useful when studying how the emulation hangs together
// at runtime.
func (dbg *Debugger) viz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("viz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.nes)

	dbg.printLine(terminal.StyleFeedback, "hardware visualisation written to %s", filename)
	return nil
}
