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

package terminal

// Style specifies the printing style, or format, for a line of terminal
// output.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back
	StyleEcho Style = iota

	// the prompt for user input
	StylePrompt

	// help information
	StyleHelp

	// information from the emulated machine (registers, memory, etc.)
	StyleMachineInfo

	// the result of a CPU instruction
	StyleCPUStep

	// information from the debugger rather than the emulated machine
	StyleFeedback

	// entries from the central log
	StyleLog

	// error messages
	StyleError
)

// IsPrompt returns true if the style is one that is used to prompt for
// input. Prompt styles are not terminated with a newline.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
