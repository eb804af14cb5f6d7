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

// Package terminal defines the operations required by the command line
// interface of the debugger. Two implementations are provided, the
// PlainTerminal in the plainterm sub-package works everywhere, the
// ColorTerminal in the colorterm sub-package supports colorised output and
// command history on posix terminals.
package terminal

import "errors"

// ErrInterrupt is returned by TermRead() when the user has interrupted input
// (with ctrl-c for example).
var ErrInterrupt = errors.New("user interrupt")

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string
	Style   Style
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead will return the number of characters inserted into the
	// buffer, or an error, when completed.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction. Instances that don't should return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is
	// true.
	Silence(silenced bool)
}
