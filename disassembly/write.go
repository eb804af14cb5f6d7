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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include instruction bytecode in output
	ByteCode bool

	// include decoded entries as well as blessed entries
	Decoded bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	// addresses are written in program order. blessed entries are followed
	// by skipping the instruction length, decoded entries are only visited
	// when the Decoded attribute is set
	i := 0
	for i < len(dsm.entries) {
		e := dsm.entries[i]
		if e == nil {
			i++
			continue
		}

		if e.Level == EntryLevelBlessed {
			err := dsm.WriteEntry(output, attr, e)
			if err != nil {
				return err
			}
			i += e.Result.ByteCount
			continue
		}

		if attr.Decoded {
			err := dsm.WriteEntry(output, attr, e)
			if err != nil {
				return err
			}
		}
		i++
	}

	return nil
}

// WriteEntry writes a single disassembly Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var err error

	if attr.ByteCode {
		_, err = io.WriteString(output, fmt.Sprintf("%-8s ", e.Bytecode))
		if err != nil {
			return err
		}
	}

	line := strings.TrimRight(fmt.Sprintf("%s %4s %s", e.Address, e.Operator, e.Operand), " ")
	_, err = io.WriteString(output, line+"\n")
	return err
}
