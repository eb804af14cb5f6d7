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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/krbrs/gopher2a03/hardware/memory"
)

// the iNES file format magic number.
var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// length of the iNES header.
const inesHeaderLen = 16

// length of the optional trainer block that can appear between an iNES
// header and the program data.
const inesTrainerLen = 512

// Loader is used to specify the program to attach to the console. The
// Load() function handles both the iNES file format and raw program ROM
// dumps.
type Loader struct {
	// filename of the program to load
	Filename string

	// hash of the loaded data. empty until a load operation, after which it
	// is the SHA1 hash of the program data
	Hash string

	// the program ROM image. vector information and all
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the program file from disk. iNES images are unwrapped to the bare
// program ROM, raw dumps are used as they are. In both cases the data must
// fit the console's program area.
func (cl *Loader) Load() error {
	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}

	if isINES(data) {
		data, err = unwrapINES(data)
		if err != nil {
			return err
		}
	}

	if len(data) != memory.PRGSizeSmall && len(data) != memory.PRGSizeLarge {
		return fmt.Errorf("loader: unexpected program size (%d bytes)", len(data))
	}

	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

func isINES(data []byte) bool {
	if len(data) < len(inesMagic) {
		return false
	}
	for i := range inesMagic {
		if data[i] != inesMagic[i] {
			return false
		}
	}
	return true
}

func unwrapINES(data []byte) ([]uint8, error) {
	if len(data) < inesHeaderLen {
		return nil, fmt.Errorf("loader: iNES header is incomplete")
	}

	// program size is specified in 16k units
	prgSize := int(data[4]) * memory.PRGSizeSmall

	// only mapper zero images fit in the console's program area
	if prgSize != memory.PRGSizeSmall && prgSize != memory.PRGSizeLarge {
		return nil, fmt.Errorf("loader: unsupported program size (%d bytes)", prgSize)
	}

	offset := inesHeaderLen

	// skip trainer if the header says one is present
	if data[6]&0x04 == 0x04 {
		offset += inesTrainerLen
	}

	if len(data) < offset+prgSize {
		return nil, fmt.Errorf("loader: iNES file is incomplete")
	}

	return data[offset : offset+prgSize], nil
}
