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

package logger

import (
	"fmt"
	"io"
)

const maxCentral = 256

var central = newLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer. Returns true if anything was
// written.
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the last N entries of the central logger to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho mirrors every future entry of the central logger to io.Writer.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
